package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrugID(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Aspirin", "aspirin-1700000000123"},
		{"spaces and punctuation", "Bayer Aspirin (81 mg)", "bayer-aspirin--81-mg--1700000000123"},
		{"non ascii", "Café", "caf--1700000000123"},
		{"empty", "", "unknown-1700000000123"},
		{"only symbols", "***", "unknown-1700000000123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DrugID(tt.in, at))
		})
	}
}
