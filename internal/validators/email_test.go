package validators

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx    map[string][]*net.MX
	hosts map[string][]string
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if mx, ok := f.mx[name]; ok {
		return mx, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if h, ok := f.hosts[host]; ok {
		return h, nil
	}
	return nil, errors.New("no such host")
}

func TestEmailDomainChecker(t *testing.T) {
	c := NewEmailDomainChecker(fakeResolver{
		mx:    map[string][]*net.MX{"mail.com": {{Host: "mx.mail.com.", Pref: 10}}},
		hosts: map[string][]string{"host.com": {"10.0.0.1"}},
	}, time.Second)
	ctx := context.Background()

	cases := []struct {
		email string
		want  bool
	}{
		{"juan@mail.com", true},
		{"juan@host.com", true},
		{"juan@nowhere.invalid", false},
		{"juan", false},
		{"juan@", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Valid(ctx, tc.email))
		})
	}
}
