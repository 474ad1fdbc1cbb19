// Package auth extracts the acting user from a bearer token and holds the
// single capability table consulted before workflow commands are dispatched.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Actor is the authenticated user acting on a leg or period.
type Actor struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Roles     []string
}

const (
	RolePreparer = "preparer"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// Action names a capability checked against the table below.
type Action string

const (
	// ActionPrepare covers editing and submitting a leg for the actor's company.
	ActionPrepare Action = "prepare"
	// ActionReview covers approving or rejecting a submitted leg.
	ActionReview Action = "review"
	// ActionManageCalendar covers fiscal-year and period lifecycle commands.
	ActionManageCalendar Action = "manage_calendar"
)

// capabilities is the one place role-based rules live; both the command
// handlers and any read-model projection consult it.
var capabilities = map[Action][]string{
	ActionPrepare:        {RolePreparer, RoleReviewer, RoleAdmin},
	ActionReview:         {RoleReviewer, RoleAdmin},
	ActionManageCalendar: {RoleAdmin},
}

func (a Actor) hasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// Can reports whether the actor may perform the action. Leg actions are
// additionally restricted to the actor's own company.
func (a Actor) Can(action Action, companyID uuid.UUID) bool {
	if action != ActionManageCalendar && a.CompanyID != companyID {
		return false
	}

	for _, role := range capabilities[action] {
		if a.hasRole(role) {
			return true
		}
	}

	return false
}

type claims struct {
	jwt.RegisteredClaims

	CompanyID string   `json:"company_id"`
	Roles     []string `json:"roles"`
}

type contextKey struct{}

// Verifier validates HS256 bearer tokens issued by the identity service.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Middleware rejects requests without a valid bearer token and puts the
// actor on the request context.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		actor, err := v.parse(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, actor)))
	})
}

func (v *Verifier) parse(token string) (Actor, error) {
	var c claims

	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Actor{}, err
	}

	if !parsed.Valid {
		return Actor{}, jwt.ErrTokenUnverifiable
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Actor{}, err
	}

	companyID, err := uuid.Parse(c.CompanyID)
	if err != nil {
		return Actor{}, err
	}

	return Actor{ID: id, CompanyID: companyID, Roles: c.Roles}, nil
}

// FromContext returns the actor placed by Middleware.
func FromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(Actor)
	return actor, ok
}
