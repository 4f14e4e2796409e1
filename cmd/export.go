package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examly/internal/exam"
	"github.com/abhisek/examly/internal/examgen"
	"github.com/abhisek/examly/internal/export"
	"github.com/abhisek/examly/internal/llm"
	"github.com/abhisek/examly/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate an exam and write it to files instead of taking it",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		questions, _ := cmd.Flags().GetInt("questions")
		choices, _ := cmd.Flags().GetInt("choices")
		format, _ := cmd.Flags().GetString("format")
		base, _ := cmd.Flags().GetString("out")

		if format != "txt" && format != "json" && format != "yaml" {
			return fmt.Errorf("unknown format %q (want txt, json, or yaml)", format)
		}

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
			fmt.Fprintln(os.Stderr, "Warning: the completion was cut short; the answer key has gaps.")
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

		switch format {
		case "txt":
			paperPath := base + ".txt"
			keyPath := base + ".key.txt"
			if err := os.WriteFile(paperPath, []byte(export.Paper(gen.Exam)), 0o644); err != nil {
				return fmt.Errorf("write paper: %w", err)
			}
			if err := os.WriteFile(keyPath, []byte(export.Key(gen.Exam)), 0o644); err != nil {
				return fmt.Errorf("write answer key: %w", err)
			}
			fmt.Printf("Wrote %s and %s\n", paperPath, keyPath)

		case "json", "yaml":
			doc := export.NewDocument(examID, topic, gen.Model, time.Now().UTC(), gen.Exam)
			path := base + "." + format
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			if format == "json" {
				err = export.EncodeJSON(f, doc)
			} else {
				err = export.EncodeYAML(f, doc)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			fmt.Printf("Wrote %s\n", path)
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("topic", "t", "", "Exam topic (required)")
	exportCmd.Flags().IntP("questions", "q", 5, "Number of questions")
	exportCmd.Flags().IntP("choices", "c", 4, "Options per question")
	exportCmd.Flags().StringP("format", "f", "txt", "Output format: txt, json, or yaml")
	exportCmd.Flags().StringP("out", "o", "exam", "Output file base name (extension is added)")
	_ = exportCmd.MarkFlagRequired("topic")
}
