package domain

// WireJob is the background-job shape received from the Gorgias API. Params
// is an untyped structured payload defined per job type.
type WireJob struct {
	ID                int64          `json:"id"`
	Type              string         `json:"type"`
	Status            string         `json:"status,omitempty"`
	Params            map[string]any `json:"params,omitempty"`
	CreatedDatetime   string         `json:"created_datetime,omitempty"`
	StartedDatetime   string         `json:"started_datetime,omitempty"`
	CompletedDatetime string         `json:"completed_datetime,omitempty"`
}

// Job is the internal background-job shape.
type Job struct {
	ID                int64          `json:"id"`
	Type              string         `json:"type"`
	Status            string         `json:"status,omitempty"`
	Params            map[string]any `json:"params,omitempty"`
	CreatedDatetime   string         `json:"createdDatetime,omitempty"`
	StartedDatetime   string         `json:"startedDatetime,omitempty"`
	CompletedDatetime string         `json:"completedDatetime,omitempty"`
}

// MapJob converts a wire job to the internal shape.
func MapJob(w WireJob) Job {
	return Job{
		ID:                w.ID,
		Type:              w.Type,
		Status:            w.Status,
		Params:            w.Params,
		CreatedDatetime:   w.CreatedDatetime,
		StartedDatetime:   w.StartedDatetime,
		CompletedDatetime: w.CompletedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (j Job) Wire() WireJob {
	return WireJob{
		ID:                j.ID,
		Type:              j.Type,
		Status:            j.Status,
		Params:            j.Params,
		CreatedDatetime:   j.CreatedDatetime,
		StartedDatetime:   j.StartedDatetime,
		CompletedDatetime: j.CompletedDatetime,
	}
}

// JobCreate is the payload for submitting a background job.
type JobCreate struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}
