package domain

// WireAccount is the tenant account shape received from the Gorgias API.
// There is exactly one account per tenant; it has no list operation.
type WireAccount struct {
	ID              int64  `json:"id"`
	Domain          string `json:"domain"`
	Name            string `json:"name,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	DefaultLanguage string `json:"default_language,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
}

// Account is the internal tenant account shape.
type Account struct {
	ID              int64  `json:"id"`
	Domain          string `json:"domain"`
	Name            string `json:"name,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	DefaultLanguage string `json:"defaultLanguage,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
}

// MapAccount converts a wire account to the internal shape.
func MapAccount(w WireAccount) Account {
	return Account{
		ID:              w.ID,
		Domain:          w.Domain,
		Name:            w.Name,
		Timezone:        w.Timezone,
		DefaultLanguage: w.DefaultLanguage,
		CreatedDatetime: w.CreatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (a Account) Wire() WireAccount {
	return WireAccount{
		ID:              a.ID,
		Domain:          a.Domain,
		Name:            a.Name,
		Timezone:        a.Timezone,
		DefaultLanguage: a.DefaultLanguage,
		CreatedDatetime: a.CreatedDatetime,
	}
}

// AccountUpdate is the partial-update payload for the account.
type AccountUpdate struct {
	Name            *string `json:"name,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	DefaultLanguage *string `json:"default_language,omitempty"`
}

// StatisticNames is the closed set of named metrics the stats endpoint
// accepts.
var StatisticNames = []string{
	"total-tickets-created",
	"total-messages-sent",
	"total-tickets-closed",
	"first-response-time",
	"resolution-time",
	"customers-helped",
	"one-touch-tickets",
}

// WireStatistic is the named-metric result received from the Gorgias API.
type WireStatistic struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Statistic is the internal named-metric shape.
type Statistic struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// MapStatistic converts a wire statistic to the internal shape.
func MapStatistic(w WireStatistic) Statistic {
	return Statistic{Name: w.Name, Data: w.Data, Meta: w.Meta}
}

// Wire converts the internal shape back to wire field names.
func (s Statistic) Wire() WireStatistic {
	return WireStatistic{Name: s.Name, Data: s.Data, Meta: s.Meta}
}

// StatsQuery is the mandatory datetime range for a named-metric query.
type StatsQuery struct {
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}
