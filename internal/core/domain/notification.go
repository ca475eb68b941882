package domain

import "errors"

// ErrEmailConfigMissing is returned when notification transport credentials
// are absent and the notifier runs with strict delivery enabled.
var ErrEmailConfigMissing = errors.New("Email configuration missing")
