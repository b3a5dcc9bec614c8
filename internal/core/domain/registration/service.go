package registration

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrReservedName = errors.New("name is reserved")
)

var reservedNames = map[string]struct{}{
	"admin": {},
	"root":  {},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) CheckSubmission(submission *Submission) error {
	folded := cases.Fold().String(strings.TrimSpace(submission.Name))
	if _, reserved := reservedNames[folded]; reserved {
		return ErrReservedName
	}
	return nil
}
