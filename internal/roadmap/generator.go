package roadmap

import (
	"errors"
	"slices"
	"time"
)

// RestDayXP is the fixed reward for a rest day.
const RestDayXP = 10

var errNoContent = errors.New("content pools are empty")

// Phase labels in plan order.
const (
	PhaseFoundation    = "Foundation"
	PhaseCoreConcepts  = "Core Concepts"
	PhaseAdvanced      = "Advanced Patterns"
	PhaseSystemDesign  = "System Design & Projects"
	PhaseInterviewPrep = "Interview Prep"
	PhaseFinalSprint   = "Final Sprint"
)

// phaseBands maps an upper bound in percent of the plan to its phase.
var phaseBands = []struct {
	upTo  int
	label string
}{
	{15, PhaseFoundation},
	{35, PhaseCoreConcepts},
	{55, PhaseAdvanced},
	{75, PhaseSystemDesign},
	{90, PhaseInterviewPrep},
}

// Phase returns the phase label for day within a plan of totalDays.
func Phase(day, totalDays int) string {
	for _, b := range phaseBands {
		// day/totalDays <= upTo/100, kept in integers.
		if day*100 <= b.upTo*totalDays {
			return b.label
		}
	}
	return PhaseFinalSprint
}

// Generator builds schedules from a fixed set of content pools.
type Generator struct {
	pools Pools
	now   func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source for the CreatedAt stamp.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a generator over pools.
func NewGenerator(pools Pools, opts ...Option) *Generator {
	g := &Generator{pools: pools, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Default returns a generator over the built-in pools.
func Default() *Generator {
	return NewGenerator(DefaultPools())
}

// Generate builds a roadmap with the default generator.
func Generate(role Role, timeframe Timeframe, company CompanyType) (*Roadmap, error) {
	return Default().Generate(role, timeframe, company)
}

// Generate builds a roadmap. The schedule depends only on the three inputs.
//
// Every rest-interval day is a rest day. Other days take the next item of
// Sequence(role, company); when the sequence runs out before the plan does,
// it starts again from the first item.
func (g *Generator) Generate(role Role, timeframe Timeframe, company CompanyType) (*Roadmap, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !timeframe.Valid() {
		return nil, ErrInvalidTimeframe
	}
	if !company.Valid() {
		return nil, ErrInvalidCompanyType
	}

	seq := g.Sequence(role, company)
	if len(seq) == 0 {
		return nil, errNoContent
	}

	total := timeframe.Days()
	interval := timeframe.RestInterval()
	schedule := make([]Day, 0, total)
	next := 0
	for n := 1; n <= total; n++ {
		var d Day
		if n%interval == 0 {
			d = restDay()
		} else {
			d = contentDay(seq[next%len(seq)])
			next++
		}
		d.Day = n
		d.Week = (n + 6) / 7
		d.Month = (n + 29) / 30
		d.Phase = Phase(n, total)
		schedule = append(schedule, d)
	}

	return &Roadmap{
		TotalDays:   total,
		Role:        role,
		CompanyType: company,
		Timeframe:   timeframe,
		Schedule:    schedule,
		CreatedAt:   g.now(),
	}, nil
}

// poolKind identifies one of the five pools.
type poolKind int

const (
	poolDSA poolKind = iota
	poolDevelopment
	poolCSFundamentals
	poolProject
	poolInterview
)

// roleOrder is the base pool order for each role.
var roleOrder = map[Role][]poolKind{
	RoleSDE:       {poolDSA, poolCSFundamentals, poolDevelopment, poolProject, poolInterview},
	RoleBackend:   {poolDSA, poolDevelopment, poolCSFundamentals, poolProject, poolInterview},
	RoleFullStack: {poolDevelopment, poolDSA, poolProject, poolCSFundamentals, poolInterview},
	RoleFrontend:  {poolDevelopment, poolProject, poolDSA, poolCSFundamentals, poolInterview},
}

// companyFront lists the pools a company type pulls to the front, in order.
var companyFront = map[CompanyType][]poolKind{
	CompanyFAANG:        {poolDSA, poolCSFundamentals},
	CompanyStartups:     {poolDevelopment, poolProject},
	CompanyServiceBased: {poolCSFundamentals},
	CompanyMixed:        nil,
}

// Sequence returns the ordered content list for role and company. Pools are
// concatenated in the role's order with the company's preferred pools moved
// to the front. Development and project content is filtered by the role's
// focus, and frontend plans carry only the first half of the DSA pool.
func (g *Generator) Sequence(role Role, company CompanyType) []Content {
	order := pinFront(roleOrder[role], companyFront[company])
	var seq []Content
	for _, k := range order {
		seq = append(seq, g.pool(k, role)...)
	}
	return seq
}

func (g *Generator) pool(k poolKind, role Role) []Content {
	switch k {
	case poolDSA:
		if role == RoleFrontend {
			return g.pools.DSA[:(len(g.pools.DSA)+1)/2]
		}
		return g.pools.DSA
	case poolDevelopment:
		return filterFocus(g.pools.Development, role)
	case poolCSFundamentals:
		return g.pools.CSFundamentals
	case poolProject:
		return filterFocus(g.pools.Project, role)
	case poolInterview:
		return g.pools.Interview
	}
	return nil
}

// pinFront moves the kinds in front to the start of order, keeping the
// relative order of everything else.
func pinFront(order, front []poolKind) []poolKind {
	out := make([]poolKind, 0, len(order))
	for _, k := range front {
		if slices.Contains(order, k) {
			out = append(out, k)
		}
	}
	for _, k := range order {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

func filterFocus(in []Content, role Role) []Content {
	var out []Content
	for _, c := range in {
		if keepFocus(c.Focus, role) {
			out = append(out, c)
		}
	}
	return out
}

func keepFocus(f Focus, role Role) bool {
	switch role {
	case RoleFrontend:
		return f != FocusBackend
	case RoleBackend, RoleSDE:
		return f != FocusFrontend
	}
	return true
}

func contentDay(c Content) Day {
	return Day{
		Title:     c.Title,
		Topics:    append([]string{}, c.Topics...),
		Resources: append([]Resource{}, c.Resources...),
		XP:        c.XP,
		Category:  c.Category,
	}
}

func restDay() Day {
	return Day{
		Title:     "Rest & Review",
		Topics:    []string{"Review this week's notes", "Revisit one problem you found hard"},
		Resources: []Resource{},
		XP:        RestDayXP,
		IsRestDay: true,
		Category:  CategoryRest,
	}
}
