package dialog

import (
	"fmt"
	"log"
	"strings"
)

// deleteCategoryFlow drives the two-step category deletion wizard: pick a
// category, then confirm before anything is removed.
func (e *Engine) deleteCategoryFlow(s Session) Session {
	msg := strings.ToLower(strings.TrimSpace(s.Message))
	s.Next = AgentEnd

	if matchesAny(msg, []string{"cancel", "nevermind", "stop"}) {
		s.DeleteCategoryStep = DeleteCategoryIdle
		s.CategoryToDelete = ""
		s.Response = "Cancelled."
		return s
	}

	switch s.DeleteCategoryStep {
	case DeleteCategorySelect:
		categories, err := e.vocab.ListCategories()
		if err != nil {
			log.Printf("session %s: listing categories failed: %v", s.ID, err)
			s.DeleteCategoryStep = DeleteCategoryIdle
			s.Response = "Could not load categories. Please try again."
			return s
		}

		for _, c := range categories {
			if strings.EqualFold(msg, c.Name) {
				s.DeleteCategoryStep = DeleteCategoryConfirm
				s.CategoryToDelete = c.Name
				s.DeleteWordCount = c.WordCount
				s.Response = fmt.Sprintf("**Delete '%s' with %d words?**\n\nThis cannot be undone!\n\n[Yes - Delete]  [No - Cancel]",
					c.Name, c.WordCount)
				return s
			}
		}

		s.Response = fmt.Sprintf("Category '%s' not found. Try again or 'cancel'.", strings.TrimSpace(s.Message))
		return s

	case DeleteCategoryConfirm:
		if matchesAny(msg, []string{"yes", "y", "delete", "yes - delete"}) {
			category := s.CategoryToDelete
			removed, err := e.vocab.DeleteCategory(category)
			s.DeleteCategoryStep = DeleteCategoryIdle
			s.CategoryToDelete = ""
			if err != nil {
				log.Printf("session %s: deleting category %q failed: %v", s.ID, category, err)
				s.Response = "Could not delete the category. Please try again."
				return s
			}
			s.Response = fmt.Sprintf("**Deleted '%s'** (%d words removed)\n\nType `categories` to see remaining.", category, removed)
			return s
		}

		s.DeleteCategoryStep = DeleteCategoryIdle
		s.CategoryToDelete = ""
		s.Response = "Cancelled. Category kept."
		return s

	default:
		// idle: list the candidates
		categories, err := e.vocab.ListCategories()
		if err != nil {
			log.Printf("session %s: listing categories failed: %v", s.ID, err)
			s.Response = "Could not load categories. Please try again."
			return s
		}
		if len(categories) == 0 {
			s.Response = "No categories to delete!"
			return s
		}

		var lines []string
		for _, c := range categories {
			lines = append(lines, fmt.Sprintf("  - **%s** (%d words)", c.Name, c.WordCount))
		}

		s.DeleteCategoryStep = DeleteCategorySelect
		s.Response = fmt.Sprintf("**Delete which category?**\n\n%s\n\nType the category name to delete, or 'cancel' to abort.",
			strings.Join(lines, "\n"))
		return s
	}
}
