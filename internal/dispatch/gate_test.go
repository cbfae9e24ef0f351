package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenGate_Valid(t *testing.T) {
	long := strings.Repeat("a", 50)

	tests := []struct {
		name   string
		strict bool
		token  string
		want   bool
	}{
		{name: "empty", token: "", want: false},
		{name: "below minimum", token: long[:49], want: false},
		{name: "at minimum", token: long, want: true},
		{name: "fcm shaped", token: "dXJ:APA91b" + strings.Repeat("Xy_-", 30), want: true},
		{name: "lenient accepts spaces", token: long + " x", want: true},
		{name: "strict rejects spaces", strict: true, token: long + " x", want: false},
		{name: "strict accepts provider alphabet", strict: true, token: long + ":_-.", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewTokenGate(50, tt.strict)
			assert.Equal(t, tt.want, gate.Valid(tt.token))
		})
	}
}

func TestTokenGate_Screen_PreservesOrder(t *testing.T) {
	gate := NewTokenGate(50, false)
	a := strings.Repeat("a", 60)
	b := strings.Repeat("b", 60)

	valid, invalid := gate.Screen([]string{b, "x", a, ""})
	assert.Equal(t, []string{b, a}, valid)
	assert.Equal(t, 2, invalid)
}
