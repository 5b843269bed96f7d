package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation and suffix", "Acme, Inc.", "acmeinc"},
		{"spaces removed not replaced", "Open AI Labs", "openailabs"},
		{"digits kept", "3M Company", "3mcompany"},
		{"hyphen dropped", "Coca-Cola", "cocacola"},
		{"unicode dropped", "Nestlé Café", "nestlcaf"},
		{"empty", "", ""},
		{"only symbols", "&*() ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestNormalizeName_OutputCharset(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9]*$`)
	inputs := []string{
		"Ünïcödé GmbH", "tab\tand\nnewline", "ＦＵＬＬＷＩＤＴＨ", "emoji 🚀 corp",
		"MiXeD_CaSe.io", "İstanbul Holding", "K-Lite (Kelvin)",
	}
	for _, in := range inputs {
		assert.Regexp(t, allowed, NormalizeName(in), "input %q", in)
	}
}
