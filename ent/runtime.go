// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examly/ent/attemptevent"
	"github.com/abhisek/examly/ent/examevent"
	"github.com/abhisek/examly/ent/llmrequestevent"
	"github.com/abhisek/examly/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescExamID is the schema descriptor for exam_id field.
	attempteventDescExamID := attempteventFields[1].Descriptor()
	// attemptevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	attemptevent.ExamIDValidator = attempteventDescExamID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[2].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescLetter is the schema descriptor for letter field.
	attempteventDescLetter := attempteventFields[7].Descriptor()
	// attemptevent.LetterValidator is a validator for the "letter" field. It is called by the builders before save.
	attemptevent.LetterValidator = attempteventDescLetter.Validators[0].(func(string) error)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescExamID is the schema descriptor for exam_id field.
	exameventDescExamID := exameventFields[0].Descriptor()
	// examevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examevent.ExamIDValidator = exameventDescExamID.Validators[0].(func(string) error)
	// exameventDescTopic is the schema descriptor for topic field.
	exameventDescTopic := exameventFields[1].Descriptor()
	// examevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	examevent.TopicValidator = exameventDescTopic.Validators[0].(func(string) error)
	// exameventDescModel is the schema descriptor for model field.
	exameventDescModel := exameventFields[4].Descriptor()
	// examevent.DefaultModel holds the default value on creation for the model field.
	examevent.DefaultModel = exameventDescModel.Default.(string)
	// exameventDescTruncated is the schema descriptor for truncated field.
	exameventDescTruncated := exameventFields[5].Descriptor()
	// examevent.DefaultTruncated holds the default value on creation for the truncated field.
	examevent.DefaultTruncated = exameventDescTruncated.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
