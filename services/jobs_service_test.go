package services

import (
	"javajam_server/structs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func TestJobsService_SubmitApplication(t *testing.T) {
	js := NewJobsService(testLogger())

	tests := []struct {
		name            string
		application     structs.JobApplication
		expectedMessage string
		expectAccepted  bool
		expectedErrors  []string
	}{
		{
			name:            "both name and email missing",
			application:     structs.JobApplication{StartDate: futureDate()},
			expectedMessage: "Please enter your name and email.",
		},
		{
			name:            "name missing",
			application:     structs.JobApplication{Email: "jane@example.com", StartDate: futureDate()},
			expectedMessage: "Please enter your name.",
		},
		{
			name:            "email missing",
			application:     structs.JobApplication{Name: "Jane Doe", StartDate: futureDate()},
			expectedMessage: "Please enter your email.",
		},
		{
			name:            "whitespace-only name counts as missing",
			application:     structs.JobApplication{Name: "   ", Email: "jane@example.com", StartDate: futureDate()},
			expectedMessage: "Please enter your name.",
		},
		{
			name: "required checks win over format errors",
			application: structs.JobApplication{
				Name:      "Jane123",
				StartDate: futureDate(),
			},
			expectedMessage: "Please enter your email.",
		},
		{
			name: "invalid name format",
			application: structs.JobApplication{
				Name:      "Jane123",
				Email:     "jane@example.com",
				StartDate: futureDate(),
			},
			expectedMessage: "Please correct the errors in the form.",
			expectedErrors:  []string{"name"},
		},
		{
			name: "invalid email format",
			application: structs.JobApplication{
				Name:      "Jane Doe",
				Email:     "jane@",
				StartDate: futureDate(),
			},
			expectedMessage: "Please correct the errors in the form.",
			expectedErrors:  []string{"email"},
		},
		{
			name: "start date in the past",
			application: structs.JobApplication{
				Name:      "Jane Doe",
				Email:     "jane@example.com",
				StartDate: "2020-01-01",
			},
			expectedMessage: "Please correct the errors in the form.",
			expectedErrors:  []string{"start_date"},
		},
		{
			name: "unparseable start date",
			application: structs.JobApplication{
				Name:      "Jane Doe",
				Email:     "jane@example.com",
				StartDate: "next tuesday",
			},
			expectedMessage: "Please correct the errors in the form.",
			expectedErrors:  []string{"start_date"},
		},
		{
			name: "multiple field errors collected together",
			application: structs.JobApplication{
				Name:      "Jane123",
				Email:     "not-an-email",
				StartDate: "2020-01-01",
			},
			expectedMessage: "Please correct the errors in the form.",
			expectedErrors:  []string{"name", "email", "start_date"},
		},
		{
			name: "valid application",
			application: structs.JobApplication{
				Name:       "Jane Doe",
				Email:      "jane@example.com",
				StartDate:  futureDate(),
				Experience: "Two summers at a beach cafe.",
			},
			expectedMessage: "Thank you for your interest in JavaJam Coffee House!",
			expectAccepted:  true,
		},
		{
			name: "experience is optional",
			application: structs.JobApplication{
				Name:      "Jane Doe",
				Email:     "jane@example.com",
				StartDate: futureDate(),
			},
			expectedMessage: "Thank you for your interest in JavaJam Coffee House!",
			expectAccepted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := js.SubmitApplication(&tt.application)

			assert.Equal(t, tt.expectAccepted, result.Accepted)
			assert.Equal(t, tt.expectedMessage, result.Message)
			assert.Len(t, result.Errors, len(tt.expectedErrors))
			for _, field := range tt.expectedErrors {
				assert.Contains(t, result.Errors, field)
			}
		})
	}
}

func TestJobsService_ValidateField(t *testing.T) {
	js := NewJobsService(testLogger())

	tests := []struct {
		name          string
		field         string
		value         string
		expectValid   bool
		expectedError string
	}{
		{
			name:        "valid name with spaces",
			field:       "name",
			value:       "Mary Jane Watson",
			expectValid: true,
		},
		{
			name:          "name with digits",
			field:         "name",
			value:         "Jane2",
			expectedError: "Name should only contain alphabets and spaces.",
		},
		{
			name:        "empty name passes field validation",
			field:       "name",
			value:       "",
			expectValid: true,
		},
		{
			name:        "valid email",
			field:       "email",
			value:       "jane.doe@java-jam.com",
			expectValid: true,
		},
		{
			name:          "email without domain",
			field:         "email",
			value:         "jane@",
			expectedError: "Please enter a valid email address.",
		},
		{
			name:          "email with overlong tld",
			field:         "email",
			value:         "jane@example.consulting",
			expectedError: "Please enter a valid email address.",
		},
		{
			name:        "future start date",
			field:       "start_date",
			value:       futureDate(),
			expectValid: true,
		},
		{
			name:          "today is not in the future",
			field:         "start_date",
			value:         time.Now().Format("2006-01-02"),
			expectedError: "Start date must be in the future.",
		},
		{
			name:        "unknown field validates clean",
			field:       "experience",
			value:       "anything goes",
			expectValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := js.ValidateField(&structs.FieldValidationRequest{Field: tt.field, Value: tt.value})

			assert.Equal(t, tt.field, result.Field)
			assert.Equal(t, tt.expectValid, result.Valid)
			assert.Equal(t, tt.expectedError, result.Error)
		})
	}
}
