package domain

// WireSatisfactionSurvey is the survey shape received from the Gorgias API.
type WireSatisfactionSurvey struct {
	ID              int64  `json:"id"`
	TicketID        int64  `json:"ticket_id"`
	CustomerID      int64  `json:"customer_id,omitempty"`
	Score           int    `json:"score,omitempty"`
	BodyText        string `json:"body_text,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
	SentDatetime    string `json:"sent_datetime,omitempty"`
	ScoredDatetime  string `json:"scored_datetime,omitempty"`
}

// SatisfactionSurvey is the internal survey shape.
type SatisfactionSurvey struct {
	ID              int64  `json:"id"`
	TicketID        int64  `json:"ticketId"`
	CustomerID      int64  `json:"customerId,omitempty"`
	Score           int    `json:"score,omitempty"`
	BodyText        string `json:"bodyText,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
	SentDatetime    string `json:"sentDatetime,omitempty"`
	ScoredDatetime  string `json:"scoredDatetime,omitempty"`
}

// MapSatisfactionSurvey converts a wire survey to the internal shape.
func MapSatisfactionSurvey(w WireSatisfactionSurvey) SatisfactionSurvey {
	return SatisfactionSurvey{
		ID:              w.ID,
		TicketID:        w.TicketID,
		CustomerID:      w.CustomerID,
		Score:           w.Score,
		BodyText:        w.BodyText,
		CreatedDatetime: w.CreatedDatetime,
		SentDatetime:    w.SentDatetime,
		ScoredDatetime:  w.ScoredDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (s SatisfactionSurvey) Wire() WireSatisfactionSurvey {
	return WireSatisfactionSurvey{
		ID:              s.ID,
		TicketID:        s.TicketID,
		CustomerID:      s.CustomerID,
		Score:           s.Score,
		BodyText:        s.BodyText,
		CreatedDatetime: s.CreatedDatetime,
		SentDatetime:    s.SentDatetime,
		ScoredDatetime:  s.ScoredDatetime,
	}
}
