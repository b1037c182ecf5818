package usecase

import (
	"context"
	"fmt"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/mailer"
)

const reminderBody = "Hi,\n\nThis is a reminder that the task %q is due on %s.\n\nThank you!"

// SendReminders emails the assignee of every pending task that is due
// within the reminder window (overdue included). The window is filtered in
// the repository, not in memory. A failed send is recorded and does not
// abort the remaining tasks.
func (uc *implUseCase) SendReminders(ctx context.Context) (workflow.SendRemindersOutput, error) {
	total, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendReminders CountTasks: %v", err)
		return workflow.SendRemindersOutput{}, err
	}

	// Due dates are stored at start of day, so everything up to the end of
	// the last window day qualifies.
	windowEnd := uc.dates.EndOfDay(uc.startOfToday().AddDate(0, 0, uc.cfg.ReminderWindowDays))
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:    model.StatusPending,
		DueBefore: windowEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendReminders ListTasks: %v", err)
		return workflow.SendRemindersOutput{}, err
	}

	now := uc.now()
	out := workflow.SendRemindersOutput{Results: make([]workflow.ReminderResult, 0, len(tasks))}

	for _, task := range tasks {
		result := workflow.ReminderResult{
			TaskID:        task.ID,
			AssigneeEmail: task.AssigneeEmail,
			DaysLeft:      task.DaysUntilDue(now),
		}

		msg := mailer.Message{
			To:      task.AssigneeEmail,
			Subject: fmt.Sprintf("Reminder: Task '%s'", task.Description),
			Body:    fmt.Sprintf(reminderBody, task.Description, task.DueDate.Format("2006-01-02")),
		}
		if err := uc.mailer.Send(ctx, msg); err != nil {
			uc.l.Errorf(ctx, "uc.SendReminders send %s: %v", task.ID, err)
			result.Reason = err.Error()
			out.Failed++
		} else {
			result.Sent = true
			out.Sent++
		}

		out.Results = append(out.Results, result)
	}

	out.Skipped = total - len(tasks)
	uc.l.Infof(ctx, "reminders: %d sent, %d skipped, %d failed", out.Sent, out.Skipped, out.Failed)
	return out, nil
}
