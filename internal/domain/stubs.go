package domain

// Reference stubs are the minimal embedded representations of related
// records. Relations on Gorgias entities are carried as stubs, never as full
// joined records.

// WireCustomerStub is the wire shape of an embedded customer reference.
type WireCustomerStub struct {
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// CustomerStub is the internal shape of an embedded customer reference.
type CustomerStub struct {
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// WireActorStub is the wire shape of a message sender or receiver. Type
// discriminates between "customer" and "user" when the upstream provides it.
type WireActorStub struct {
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ActorStub is the internal shape of a message sender or receiver.
type ActorStub struct {
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
}

// WireTeamStub is the wire shape of an embedded team reference.
type WireTeamStub struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// TeamStub is the internal shape of an embedded team reference.
type TeamStub struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

func mapCustomerStub(w *WireCustomerStub) *CustomerStub {
	if w == nil {
		return nil
	}
	return &CustomerStub{ID: w.ID, Email: w.Email, Name: w.Name}
}

func wireCustomerStub(s *CustomerStub) *WireCustomerStub {
	if s == nil {
		return nil
	}
	return &WireCustomerStub{ID: s.ID, Email: s.Email, Name: s.Name}
}

func mapActorStub(w *WireActorStub) *ActorStub {
	if w == nil {
		return nil
	}
	return &ActorStub{ID: w.ID, Email: w.Email, Name: w.Name, Type: w.Type}
}

func wireActorStub(s *ActorStub) *WireActorStub {
	if s == nil {
		return nil
	}
	return &WireActorStub{ID: s.ID, Email: s.Email, Name: s.Name, Type: s.Type}
}

func mapTeamStub(w *WireTeamStub) *TeamStub {
	if w == nil {
		return nil
	}
	return &TeamStub{ID: w.ID, Name: w.Name}
}

func wireTeamStub(s *TeamStub) *WireTeamStub {
	if s == nil {
		return nil
	}
	return &WireTeamStub{ID: s.ID, Name: s.Name}
}
