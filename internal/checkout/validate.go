package checkout

import (
	"regexp"
	"strings"

	"github.com/artisanhome/cartengine/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateCustomer checks the required checkout fields. Missing fields are
// all reported at once so the form can highlight every one of them.
func validateCustomer(c domain.Customer) *domain.ValidationError {
	var fields []string

	if strings.TrimSpace(c.Name) == "" {
		fields = append(fields, "name")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		fields = append(fields, "email")
	} else if !emailPattern.MatchString(email) {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(c.Address) == "" {
		fields = append(fields, "address")
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
