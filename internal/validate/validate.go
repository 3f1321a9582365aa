// Package validate runs opt-in diagnostics over a resolved AppConfig.
// config.Load never calls it; an unchecked config is still a valid config.
package validate

import (
	"errors"
	"fmt"

	"github.com/0xPexy/deployconf/internal/accounts"
	"github.com/0xPexy/deployconf/internal/config"
	"github.com/go-playground/validator/v10"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Finding struct {
	Network  string   `json:"network,omitempty"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	if f.Network == "" {
		return fmt.Sprintf("%s: %s: %s", f.Severity, f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s.%s: %s", f.Severity, f.Network, f.Field, f.Message)
}

type Report struct {
	Findings []Finding `json:"findings"`
}

func (r Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

type networkFields struct {
	URL string `validate:"omitempty,url,startswith=http|startswith=ws"`
}

// Checker wraps a validator instance; it is safe for concurrent use.
type Checker struct {
	v *validator.Validate
}

func NewChecker() *Checker {
	return &Checker{v: validator.New()}
}

// Check never mutates cfg. Networks are visited in sorted order so reports
// are stable.
func (c *Checker) Check(cfg config.AppConfig) Report {
	var r Report
	add := func(network, field string, s Severity, msg string) {
		r.Findings = append(r.Findings, Finding{Network: network, Field: field, Severity: s, Message: msg})
	}

	if _, ok := cfg.Network(cfg.DefaultNetwork()); !ok {
		add("", "defaultNetwork", SeverityWarning,
			fmt.Sprintf("%q has no network profile; the build tool will reject it", cfg.DefaultNetwork()))
	}

	for _, name := range cfg.NetworkNames() {
		p, _ := cfg.Network(name)

		if p.URL() == "" {
			add(name, "url", SeverityWarning, "not set")
		} else if err := c.v.Struct(networkFields{URL: p.URL()}); err != nil {
			add(name, "url", SeverityError, fmt.Sprintf("%q is not an http(s) or ws(s) URL", p.URL()))
		}

		_, err := accounts.FromKey(p.AccountKey())
		switch {
		case err == nil:
		case errors.Is(err, accounts.ErrEmptyKey):
			add(name, "accountKey", SeverityWarning, `not set; the build tool will receive "0x"`)
		default:
			add(name, "accountKey", SeverityError, "not a 32-byte hex private key")
		}
	}
	return r
}

func Check(cfg config.AppConfig) Report {
	return NewChecker().Check(cfg)
}
