package inventory

import "encoding/json"

// Record is one row of the inventory snapshot. All fields hold the feed's
// raw text; normalization happens at reconciliation time. Records are
// read-only after load.
type Record struct {
	// Code is the product identifier, joined against marketplace offer ids.
	Code string `json:"code"`
	// Quantity is the raw quantity text: a plain integer, the ">10"
	// sentinel, or "1" meaning the last unit is reserved.
	Quantity string `json:"quantity"`
	// Price is the raw currency-formatted price text.
	Price string `json:"price"`
}

// flexString decodes a JSON string, number or null into a plain string.
// Feeds are hand-exported and inconsistent about quoting scalars.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	// Numbers keep their literal form, so 1500.00 stays "1500.00".
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// recordJSON is the wire shape of a feed row.
type recordJSON struct {
	Code     flexString `json:"code"`
	Quantity flexString `json:"quantity"`
	Price    flexString `json:"price"`
}

// decodeRecords parses a JSON array of feed rows into Records.
func decodeRecords(data []byte) ([]Record, error) {
	var rows []recordJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			Code:     string(row.Code),
			Quantity: string(row.Quantity),
			Price:    string(row.Price),
		})
	}
	return records, nil
}
