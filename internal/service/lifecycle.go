package service

import (
	"time"

	"yourlinks/internal/model"
)

// OutcomeKind is the wire-level shape of a classification result
type OutcomeKind int

const (
	OutcomeRedirect OutcomeKind = iota
	OutcomeNotFound
	OutcomeCustomPage
)

// Outcome is the terminal decision for a resolved link. Exactly one of the
// Location / Message / Page* groups is meaningful depending on Kind.
type Outcome struct {
	State model.State
	Kind  OutcomeKind

	// Redirect target when Kind is OutcomeRedirect
	Location string

	// Plain-text body when Kind is OutcomeNotFound
	Message string

	// Rendered page content when Kind is OutcomeCustomPage. PageKind is
	// "expired" or "deactivated" and drives the page theme.
	PageTitle   string
	PageMessage string
	PageKind    string

	// CountClick marks outcomes that increment the counter and append a
	// click event. Custom-page views are not counted, only redirects.
	CountClick bool
}

// Default page content when the stored title or message is empty.
const (
	defaultExpiredTitle       = "Link Expired"
	defaultExpiredMessage     = "This link has expired and is no longer available."
	defaultDeactivatedTitle   = "Link Deactivated"
	defaultDeactivatedMessage = "This link has been deactivated and is no longer available."

	expiredNotFoundMessage     = "This link has expired"
	deactivatedNotFoundMessage = "This link has been deactivated"
)

// Classify evaluates a link's lifecycle at the given instant and selects the
// terminal behavior. It is a pure function: callers inject the clock.
//
// Expiry takes precedence over deactivation when both conditions hold. A
// redirect behavior with an empty target URL degrades to the inactive
// behavior rather than failing; misconfigured rows must never error out on
// the public path.
func Classify(link *model.Link, now time.Time) Outcome {
	switch {
	case link.IsExpiredAt(now):
		return terminalOutcome(
			model.StateExpired,
			link.ExpirationBehavior,
			link.ExpiredRedirectURL,
			orDefault(link.ExpiredPageTitle, defaultExpiredTitle),
			orDefault(link.ExpiredPageMessage, defaultExpiredMessage),
			expiredNotFoundMessage,
		)
	case !link.IsActive:
		return terminalOutcome(
			model.StateDeactivated,
			link.DeactivationBehavior,
			link.DeactivatedRedirectURL,
			orDefault(link.DeactivatedPageTitle, defaultDeactivatedTitle),
			orDefault(link.DeactivatedPageMessage, defaultDeactivatedMessage),
			deactivatedNotFoundMessage,
		)
	default:
		return Outcome{
			State:      model.StateActive,
			Kind:       OutcomeRedirect,
			Location:   link.OriginalURL,
			CountClick: true,
		}
	}
}

// terminalOutcome resolves the sub-behavior for an expired or deactivated link
func terminalOutcome(state model.State, behavior, redirectURL, pageTitle, pageMessage, notFoundMessage string) Outcome {
	switch behavior {
	case model.BehaviorRedirect:
		if redirectURL != "" {
			return Outcome{
				State:      state,
				Kind:       OutcomeRedirect,
				Location:   redirectURL,
				CountClick: true,
			}
		}
		// Empty target falls through to the inactive behavior.
	case model.BehaviorCustomPage:
		return Outcome{
			State:       state,
			Kind:        OutcomeCustomPage,
			PageTitle:   pageTitle,
			PageMessage: pageMessage,
			PageKind:    state.String(),
		}
	}

	return Outcome{
		State:   state,
		Kind:    OutcomeNotFound,
		Message: notFoundMessage,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
