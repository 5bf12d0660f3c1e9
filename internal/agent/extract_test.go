package agent

import (
	"testing"

	"github.com/Manny2706/servicehire/internal/model/convo"
)

func TestExtractSlot(t *testing.T) {
	cases := []struct {
		name    string
		field   convo.Field
		message string
		want    convo.State
	}{
		{
			name:    "valid email",
			field:   convo.FieldEmail,
			message: "  jane@x.com ",
			want:    convo.State{Email: "jane@x.com"},
		},
		{
			name:    "email missing at sign",
			field:   convo.FieldEmail,
			message: "jane.x.com",
			want:    convo.State{},
		},
		{
			name:    "email missing dot",
			field:   convo.FieldEmail,
			message: "jane@xcom",
			want:    convo.State{},
		},
		{
			name:    "platform case-insensitive substring",
			field:   convo.FieldPlatform,
			message: "I'm big on INSTAGRAM",
			want:    convo.State{Platform: "Instagram"},
		},
		{
			name:    "platform not in fixed set",
			field:   convo.FieldPlatform,
			message: "twitch",
			want:    convo.State{},
		},
		{
			name:    "name with space",
			field:   convo.FieldName,
			message: "John Smith",
			want:    convo.State{Name: "John Smith"},
		},
		{
			name:    "name with digits rejected",
			field:   convo.FieldName,
			message: "John2",
			want:    convo.State{},
		},
		{
			name:    "empty name rejected",
			field:   convo.FieldName,
			message: "   ",
			want:    convo.State{},
		},
		{
			name:    "no field requested",
			field:   convo.FieldNone,
			message: "jane@x.com",
			want:    convo.State{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := convo.State{
				UserMessage:    tc.message,
				RequestedField: tc.field,
			}
			got := extractSlot(state)

			if got.Name != tc.want.Name || got.Email != tc.want.Email || got.Platform != tc.want.Platform {
				t.Fatalf("extractSlot(%q, %q) = %q/%q/%q, want %q/%q/%q",
					tc.field, tc.message,
					got.Name, got.Email, got.Platform,
					tc.want.Name, tc.want.Email, tc.want.Platform)
			}
			if got.RequestedField != tc.field {
				t.Fatalf("extractSlot must not change the requested field, got %q", got.RequestedField)
			}
		})
	}
}

func TestIsAlphabetic(t *testing.T) {
	cases := map[string]bool{
		"John":       true,
		"John Smith": true,
		"Łukasz":     true,
		"":           false,
		" ":          false,
		"John-Smith": false,
		"john@x.com": false,
		"42":         false,
	}

	for input, want := range cases {
		if got := isAlphabetic(input); got != want {
			t.Errorf("isAlphabetic(%q) = %v, want %v", input, got, want)
		}
	}
}
