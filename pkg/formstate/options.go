package formstate

import "log/slog"

// NamePolicy controls how a declaration's output Name relates to its Key.
type NamePolicy int

const (
	// NamePolicyRename lets Name differ from Key; Data uses Name.
	NamePolicyRename NamePolicy = iota
	// NamePolicyMatchKey rejects declarations whose Name differs from Key.
	NamePolicyMatchKey
)

type options struct {
	logger     *slog.Logger
	namePolicy NamePolicy
}

func defaultOptions() options {
	return options{
		namePolicy: NamePolicyRename,
	}
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger used for soft warnings. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithNamePolicy selects the output naming policy.
func WithNamePolicy(policy NamePolicy) Option {
	return func(o *options) {
		o.namePolicy = policy
	}
}

// WithStrictNames is shorthand for WithNamePolicy(NamePolicyMatchKey).
func WithStrictNames() Option {
	return WithNamePolicy(NamePolicyMatchKey)
}
