package pagination

// Envelope is the wire format every paginated list endpoint returns.
// Data is pass-through: slices, scalars and objects all work, so the
// same envelope serves artist, event-artist and tag listings.
type Envelope struct {
	Data                  interface{} `json:"data"`
	TotalCount            int64       `json:"totalCount"`
	TotalPage             int         `json:"totalPage"`
	NextPageAvailable     bool        `json:"nextPageAvailable"`
	PreviousPageAvailable bool        `json:"previousPageAvailable"`
	PageSize              int         `json:"pageSize"`
}

// NewEnvelope assembles pagination metadata around a result page.
// totalPage is ceil(totalCount/pageSize) and is 0 exactly when
// totalCount is 0. Page bounds are the caller's responsibility.
func NewEnvelope(data interface{}, page, pageSize int, totalCount int64) Envelope {
	totalPage := 0
	if pageSize > 0 {
		totalPage = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return Envelope{
		Data:                  data,
		TotalCount:            totalCount,
		TotalPage:             totalPage,
		NextPageAvailable:     page < totalPage,
		PreviousPageAvailable: page > 1,
		PageSize:              pageSize,
	}
}
