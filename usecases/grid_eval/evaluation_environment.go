package grid_eval

import (
	"context"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

// LocaleAccessor is the ambient locale slot localized values are read with.
type LocaleAccessor interface {
	Locale() string
	SetLocale(locale string)
}

// AmbientLocale is a request scoped LocaleAccessor. It is not safe for concurrent use:
// one evaluation owns it.
type AmbientLocale struct {
	locale string
}

func NewAmbientLocale(locale string) *AmbientLocale {
	return &AmbientLocale{locale: locale}
}

func (l *AmbientLocale) Locale() string {
	return l.locale
}

func (l *AmbientLocale) SetLocale(locale string) {
	l.locale = locale
}

type WorkflowStatusProvider interface {
	AllStatusesHtml(ctx context.Context, element models.Element) (string, error)
	AllStatusesPlain(ctx context.Context, element models.Element) (string, error)
}

type EvaluationEnvironment struct {
	Locale                 LocaleAccessor
	Purpose                models.EvaluationPurpose
	WorkflowStatusProvider WorkflowStatusProvider
}

func NewEvaluationEnvironment(
	locale string,
	purpose models.EvaluationPurpose,
	workflowStatusProvider WorkflowStatusProvider,
) EvaluationEnvironment {
	return EvaluationEnvironment{
		Locale:                 NewAmbientLocale(locale),
		Purpose:                purpose,
		WorkflowStatusProvider: workflowStatusProvider,
	}
}

// withAmbientLocale gives an environment without locale an empty ambient locale.
func (env EvaluationEnvironment) withAmbientLocale() EvaluationEnvironment {
	if env.Locale == nil {
		env.Locale = NewAmbientLocale("")
	}
	return env
}

// withLocale sets the ambient locale and returns the function restoring the previous one.
func (env EvaluationEnvironment) withLocale(locale string) (restore func()) {
	previous := env.Locale.Locale()
	env.Locale.SetLocale(locale)
	return func() {
		env.Locale.SetLocale(previous)
	}
}
