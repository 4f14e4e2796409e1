package exam

import (
	"errors"
	"testing"
)

func TestSpecValidate_OK(t *testing.T) {
	s := Spec{Topic: "US history", NumQuestions: 5, NumChoices: 4}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpecValidate_EmptyTopic(t *testing.T) {
	s := Spec{Topic: "   ", NumQuestions: 5, NumChoices: 4}
	if err := s.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestSpecValidate_TooFewQuestions(t *testing.T) {
	s := Spec{Topic: "US history", NumQuestions: 0, NumChoices: 4}
	if err := s.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestSpecValidate_TooFewChoices(t *testing.T) {
	s := Spec{Topic: "US history", NumQuestions: 5, NumChoices: 1}
	if err := s.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}
