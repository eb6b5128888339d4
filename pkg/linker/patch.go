package linker

import (
	"encoding/json"

	"github.com/tidwall/sjson"

	"github.com/harrisonrobin/linka/pkg/config"
	"github.com/harrisonrobin/linka/pkg/notion"
)

type relationRef struct {
	ID string `json:"id"`
}

// relationPatch builds the partial-update payload for a task's relation
// fields. Only resolved relations appear in the payload; each is a
// single-element list that replaces any existing value. With nothing
// resolved it returns nil, meaning no update should be issued.
func relationPatch(props *config.Properties, weeklyID, monthlyID string) ([]byte, error) {
	if weeklyID == "" && monthlyID == "" {
		return nil, nil
	}

	body := []byte(`{}`)
	var err error
	if weeklyID != "" {
		body, err = setRelation(body, props.TaskWeeklyLink, weeklyID)
		if err != nil {
			return nil, err
		}
	}
	if monthlyID != "" {
		body, err = setRelation(body, props.TaskMonthlyLink, monthlyID)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}

func setRelation(body []byte, property, pageID string) ([]byte, error) {
	raw, err := json.Marshal([]relationRef{{ID: pageID}})
	if err != nil {
		return nil, err
	}
	path := "properties." + notion.EscapePath(property) + ".relation"
	return sjson.SetRawBytes(body, path, raw)
}
