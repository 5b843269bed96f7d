package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHref(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{"leading slash", "https://foo.com", "/careers", "https://foo.com/careers"},
		{"base trailing slash", "https://foo.com/", "/careers", "https://foo.com/careers"},
		{"no slashes", "https://foo.com", "jobs", "https://foo.com/jobs"},
		{"many slashes", "https://foo.com//", "//jobs", "https://foo.com/jobs"},
		{"absolute kept", "https://foo.com", "https://boards.example.com/foo", "https://boards.example.com/foo"},
		{"absolute http kept", "https://foo.com", "http://foo.com/x", "http://foo.com/x"},
		{"nested base", "https://foo.com/careers/", "/jobs/1", "https://foo.com/careers/jobs/1"},
		{"parent segment not resolved", "https://foo.com/a", "../b", "https://foo.com/a/../b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveHref(tt.base, tt.href))
		})
	}
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "www.foo.io", HostOf("https://WWW.Foo.io/jobs"))
	assert.Equal(t, "", HostOf("not a url"))
	assert.Equal(t, "", HostOf("::"))
}
