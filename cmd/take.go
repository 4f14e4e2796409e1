package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examly/internal/exam"
	"github.com/abhisek/examly/internal/examgen"
	"github.com/abhisek/examly/internal/grading"
	"github.com/abhisek/examly/internal/llm"
	"github.com/abhisek/examly/internal/store"
	"github.com/abhisek/examly/internal/ui"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Generate an exam and take it interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		questions, _ := cmd.Flags().GetInt("questions")
		choices, _ := cmd.Flags().GetInt("choices")

		spec := exam.Spec{Topic: topic, NumQuestions: questions, NumChoices: choices}
		if err := spec.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		eventRepo := st.EventRepo()

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		fmt.Printf("Generating a %d-question exam about %s...\n", questions, topic)
		gen, err := examgen.New(provider, examgen.DefaultConfig()).Generate(ctx, spec)
		if err != nil {
			return err
		}
		if gen.Truncated {
			fmt.Fprintln(os.Stderr, "Warning: the completion was cut short; some questions may be missing their answer line and will be graded as incorrect.")
		}

		examID := uuid.NewString()
		if err := eventRepo.AppendExam(ctx, store.ExamEventData{
			ExamID:       examID,
			Topic:        topic,
			NumQuestions: gen.Exam.Len(),
			NumChoices:   choices,
			Model:        gen.Model,
			Truncated:    gen.Truncated,
		}); err != nil {
			return fmt.Errorf("record exam: %w", err)
		}

		final, err := tea.NewProgram(ui.New(topic, gen.Exam.Views(), gen.Truncated)).Run()
		if err != nil {
			return fmt.Errorf("run exam: %w", err)
		}
		model, ok := final.(ui.Model)
		if !ok {
			return fmt.Errorf("unexpected final model %T", final)
		}

		submitted := model.Answers()
		result, err := grading.Grade(gen.Exam.AnswerKey(), submitted)
		if err != nil {
			if errors.Is(err, grading.ErrNoAnswers) {
				fmt.Println("No answers submitted; nothing to grade.")
				return nil
			}
			return err
		}

		fmt.Println(result.Summary())

		return eventRepo.AppendAttempt(ctx, store.AttemptEventData{
			AttemptID:    uuid.NewString(),
			ExamID:       examID,
			Topic:        topic,
			NumQuestions: gen.Exam.Len(),
			Answered:     result.Total,
			Correct:      result.Correct,
			Percentage:   result.Percentage,
			Letter:       result.Letter,
		})
	},
}

func init() {
	takeCmd.Flags().StringP("topic", "t", "", "Exam topic (required)")
	takeCmd.Flags().IntP("questions", "q", 5, "Number of questions")
	takeCmd.Flags().IntP("choices", "c", 4, "Options per question")
	_ = takeCmd.MarkFlagRequired("topic")
}
