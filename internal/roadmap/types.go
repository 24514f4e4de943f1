// Package roadmap generates deterministic day-by-day study schedules and
// tracks which days have been completed.
package roadmap

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidTimeframe   = errors.New("invalid timeframe")
	ErrInvalidCompanyType = errors.New("invalid company type")
	ErrNoRoadmap          = errors.New("no roadmap generated")
	ErrDayOutOfRange      = errors.New("day out of range")
)

// Role is the job role a roadmap prepares for.
type Role string

const (
	RoleFullStack Role = "full-stack"
	RoleFrontend  Role = "frontend"
	RoleBackend   Role = "backend"
	RoleSDE       Role = "sde"
)

// AllRoles returns every role in display order.
func AllRoles() []Role {
	return []Role{RoleFullStack, RoleFrontend, RoleBackend, RoleSDE}
}

func (r Role) Valid() bool {
	switch r {
	case RoleFullStack, RoleFrontend, RoleBackend, RoleSDE:
		return true
	}
	return false
}

// DisplayName returns a human-readable role name.
func (r Role) DisplayName() string {
	switch r {
	case RoleFullStack:
		return "Full Stack"
	case RoleFrontend:
		return "Frontend"
	case RoleBackend:
		return "Backend"
	case RoleSDE:
		return "SDE"
	default:
		return string(r)
	}
}

// ParseRole converts s to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Timeframe is the overall length of a plan.
type Timeframe string

const (
	ThreeMonths Timeframe = "3_months"
	SixMonths   Timeframe = "6_months"
)

// AllTimeframes returns every timeframe.
func AllTimeframes() []Timeframe {
	return []Timeframe{ThreeMonths, SixMonths}
}

func (t Timeframe) Valid() bool {
	return t == ThreeMonths || t == SixMonths
}

// Days returns the plan length in days, or 0 for an unknown timeframe.
func (t Timeframe) Days() int {
	switch t {
	case ThreeMonths:
		return 90
	case SixMonths:
		return 180
	}
	return 0
}

// RestInterval returns n such that every n-th day is a rest day.
func (t Timeframe) RestInterval() int {
	switch t {
	case ThreeMonths:
		return 6
	case SixMonths:
		return 7
	}
	return 0
}

// ParseTimeframe converts s to a Timeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	t := Timeframe(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeframe, s)
	}
	return t, nil
}

// CompanyType is the kind of company being targeted.
type CompanyType string

const (
	CompanyFAANG        CompanyType = "FAANG"
	CompanyStartups     CompanyType = "Startups"
	CompanyServiceBased CompanyType = "Service_Based"
	CompanyMixed        CompanyType = "Mixed"
)

// AllCompanyTypes returns every company type.
func AllCompanyTypes() []CompanyType {
	return []CompanyType{CompanyFAANG, CompanyStartups, CompanyServiceBased, CompanyMixed}
}

func (c CompanyType) Valid() bool {
	switch c {
	case CompanyFAANG, CompanyStartups, CompanyServiceBased, CompanyMixed:
		return true
	}
	return false
}

// ParseCompanyType converts s to a CompanyType.
func ParseCompanyType(s string) (CompanyType, error) {
	c := CompanyType(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCompanyType, s)
	}
	return c, nil
}

// Category classifies a roadmap day.
type Category string

const (
	CategoryDSA            Category = "dsa"
	CategoryDevelopment    Category = "development"
	CategoryCSFundamentals Category = "cs-fundamentals"
	CategoryProject        Category = "project"
	CategoryInterview      Category = "interview"
	CategoryRest           Category = "rest"
)

// Resource is a study link attached to a day.
type Resource struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Type string `json:"type"`
}

// Day is one entry of a schedule. A day carries either content or rest,
// never both.
type Day struct {
	Day       int        `json:"day"`
	Week      int        `json:"week"`
	Month     int        `json:"month"`
	Phase     string     `json:"phase"`
	Title     string     `json:"title"`
	Topics    []string   `json:"topics"`
	Resources []Resource `json:"resources"`
	XP        int        `json:"xp"`
	IsRestDay bool       `json:"isRestDay"`
	Category  Category   `json:"category"`
}

// Roadmap is a generated schedule with its inputs.
type Roadmap struct {
	TotalDays   int         `json:"totalDays"`
	Role        Role        `json:"role"`
	CompanyType CompanyType `json:"companyType"`
	Timeframe   Timeframe   `json:"timeframe"`
	Schedule    []Day       `json:"schedule"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Day returns the schedule entry for day number n (1-based).
func (r *Roadmap) Day(n int) (Day, bool) {
	if r == nil || n < 1 || n > len(r.Schedule) {
		return Day{}, false
	}
	return r.Schedule[n-1], true
}
