package dialog

import (
	"context"
	"strings"
	"testing"

	"vocaquiz/internal/models"
)

func TestDeleteCategoryFlow(t *testing.T) {
	vocab := &fakeVocab{
		categories: []models.Category{
			{Name: "Animals", WordCount: 10},
			{Name: "Food", WordCount: 5},
		},
		deleteCount: 10,
	}
	e := newTestEngine(vocab, &fakeMatching{})
	ctx := context.Background()

	s := e.Advance(ctx, NewSession("s1"), "delete category")
	if s.DeleteCategoryStep != DeleteCategorySelect {
		t.Fatalf("DeleteCategoryStep = %q, want select", s.DeleteCategoryStep)
	}
	if !strings.Contains(s.Response, "**Delete which category?**") {
		t.Errorf("Response = %q", s.Response)
	}
	if !strings.Contains(s.Response, "**Animals** (10 words)") {
		t.Errorf("Response missing listing: %q", s.Response)
	}

	s = e.Advance(ctx, s, "animals")
	if s.DeleteCategoryStep != DeleteCategoryConfirm {
		t.Fatalf("DeleteCategoryStep = %q, want confirm", s.DeleteCategoryStep)
	}
	if s.CategoryToDelete != "Animals" || s.DeleteWordCount != 10 {
		t.Errorf("CategoryToDelete = %q (%d words)", s.CategoryToDelete, s.DeleteWordCount)
	}
	if !strings.Contains(s.Response, "**Delete 'Animals' with 10 words?**") {
		t.Errorf("Response = %q", s.Response)
	}
	if !strings.Contains(s.Response, "This cannot be undone!") {
		t.Errorf("Response missing warning: %q", s.Response)
	}
	if len(vocab.deletedCategories) != 0 {
		t.Fatal("nothing may be deleted before confirmation")
	}

	s = e.Advance(ctx, s, "yes")
	if s.DeleteCategoryStep != DeleteCategoryIdle {
		t.Errorf("DeleteCategoryStep = %q, want idle", s.DeleteCategoryStep)
	}
	if !strings.Contains(s.Response, "**Deleted 'Animals'** (10 words removed)") {
		t.Errorf("Response = %q", s.Response)
	}
	if len(vocab.deletedCategories) != 1 || vocab.deletedCategories[0] != "Animals" {
		t.Errorf("deletedCategories = %v", vocab.deletedCategories)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	vocab := &fakeVocab{categories: []models.Category{{Name: "Animals", WordCount: 10}}}
	e := newTestEngine(vocab, &fakeMatching{})
	ctx := context.Background()

	s := e.Advance(ctx, NewSession("s1"), "delete category")
	s = e.Advance(ctx, s, "Plants")

	if s.DeleteCategoryStep != DeleteCategorySelect {
		t.Errorf("DeleteCategoryStep = %q, want to stay on select", s.DeleteCategoryStep)
	}
	if !strings.Contains(s.Response, "Category 'Plants' not found.") {
		t.Errorf("Response = %q", s.Response)
	}
}

func TestDeleteCategoryDeclined(t *testing.T) {
	vocab := &fakeVocab{categories: []models.Category{{Name: "Animals", WordCount: 10}}}
	e := newTestEngine(vocab, &fakeMatching{})
	ctx := context.Background()

	s := e.Advance(ctx, NewSession("s1"), "delete category")
	s = e.Advance(ctx, s, "Animals")
	s = e.Advance(ctx, s, "no")

	if s.DeleteCategoryStep != DeleteCategoryIdle || s.CategoryToDelete != "" {
		t.Errorf("step = %q, pending = %q, want cleared", s.DeleteCategoryStep, s.CategoryToDelete)
	}
	if s.Response != "Cancelled. Category kept." {
		t.Errorf("Response = %q", s.Response)
	}
	if len(vocab.deletedCategories) != 0 {
		t.Error("declined deletion must not touch the store")
	}
}

func TestDeleteCategoryCancelMidSelect(t *testing.T) {
	vocab := &fakeVocab{categories: []models.Category{{Name: "Animals", WordCount: 10}}}
	e := newTestEngine(vocab, &fakeMatching{})
	ctx := context.Background()

	s := e.Advance(ctx, NewSession("s1"), "delete category")
	s = e.Advance(ctx, s, "cancel")

	if s.DeleteCategoryStep != DeleteCategoryIdle {
		t.Errorf("DeleteCategoryStep = %q, want idle", s.DeleteCategoryStep)
	}
	if s.Response != "Cancelled." {
		t.Errorf("Response = %q", s.Response)
	}
}

func TestDeleteCategoryNothingToDelete(t *testing.T) {
	e := newTestEngine(&fakeVocab{}, &fakeMatching{})

	s := e.Advance(context.Background(), NewSession("s1"), "delete category")

	if s.Response != "No categories to delete!" {
		t.Errorf("Response = %q", s.Response)
	}
	if s.DeleteCategoryStep != DeleteCategoryIdle {
		t.Errorf("DeleteCategoryStep = %q, want idle", s.DeleteCategoryStep)
	}
}
