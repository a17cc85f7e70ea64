package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"vocaquiz/internal/models"
)

// ReportService emails quiz-run summaries via Amazon SES.
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	toEmail   string
	enabled   bool
}

// NewReportService creates a report service. If fromEmail or toEmail is
// empty, the service is created disabled and every send is a silent no-op.
func NewReportService(awsRegion, fromEmail, fromName, toEmail string) (*ReportService, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("Report emails disabled: SES_FROM_EMAIL or REPORT_EMAIL not configured")
		return &ReportService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report emails enabled: from=%s, to=%s, region=%s", fromEmail, toEmail, awsRegion)
	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether report emails are configured.
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendRunReport emails a summary of a completed quiz run together with the
// learner's overall statistics.
func (s *ReportService) SendRunReport(ctx context.Context, mode string, correct, total int, stats *models.AttemptStats) error {
	if !s.enabled {
		return nil
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	subject := fmt.Sprintf("VocaQuiz: %s run finished, %d/%d (%.0f%%)", strings.ToUpper(mode), correct, total, accuracy)

	var overall string
	if stats != nil {
		overall = fmt.Sprintf(`
			<p><strong>Overall progress:</strong></p>
			<ul>
				<li>Total attempts: %d</li>
				<li>Correct: %d</li>
				<li>Incorrect: %d</li>
				<li>Accuracy: %.1f%%</li>
			</ul>`,
			stats.TotalAttempts, stats.CorrectCount, stats.IncorrectCount, stats.AccuracyPercent)
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Quiz Run Complete</h1>
		</div>
		<div class="content">
			<p>A %s run just finished with a score of <strong>%d/%d (%.0f%%)</strong>.</p>
			%s
		</div>
		<div class="footer">
			<p>This is an automated email from VocaQuiz. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, strings.ToUpper(mode), correct, total, accuracy, overall)

	textBody := fmt.Sprintf(`A %s run just finished with a score of %d/%d (%.0f%%).
`, strings.ToUpper(mode), correct, total, accuracy)
	if stats != nil {
		textBody += fmt.Sprintf(`
Overall progress:
- Total attempts: %d
- Correct: %d
- Incorrect: %d
- Accuracy: %.1f%%
`, stats.TotalAttempts, stats.CorrectCount, stats.IncorrectCount, stats.AccuracyPercent)
	}
	textBody += "\n---\nThis is an automated email from VocaQuiz. Please do not reply.\n"

	return s.sendEmail(ctx, subject, htmlBody, textBody)
}

func (s *ReportService) sendEmail(ctx context.Context, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	if result.MessageId != nil {
		log.Printf("Report email sent: subject=%s, messageId=%s", subject, *result.MessageId)
	}
	return nil
}
