package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

// MessagesRequest is the input of one message catalog export.
type MessagesRequest struct {
	AppID       types.AppID
	ClientKey   types.ClientKey
	Date        types.ExportDate
	TablePrefix string
	Dataset     types.BQDatasetID
}

func NewMessagesRequest(appID, clientKey, date, tablePrefix, dataset string) (*MessagesRequest, error) {
	if appID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "app ID is empty")
	}
	if clientKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "client key is empty")
	}
	if dataset == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery dataset is empty")
	}

	day, err := types.ParseExportDate(date)
	if err != nil {
		return nil, err
	}

	return &MessagesRequest{
		AppID:       types.AppID(appID),
		ClientKey:   types.ClientKey(clientKey),
		Date:        day,
		TablePrefix: tablePrefix,
		Dataset:     types.BQDatasetID(dataset),
	}, nil
}

// TableID names the destination table of the message catalog load.
func (x *MessagesRequest) TableID() types.BQTableID {
	if x.TablePrefix == "" {
		return types.BQTableID(types.TableMessages.String())
	}
	return types.BQTableID(x.TablePrefix + "_" + types.TableMessages.String())
}

// Message is one entry of the vendor's message catalog. Created is epoch
// seconds with a fractional part, as the vendor serializes timestamps.
type Message struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Active      bool    `json:"active"`
	MessageType string  `json:"messageType"`
	Created     float64 `json:"created"`
}

// MessageRow is a Message annotated with the load date, in the shape the
// destination table expects.
type MessageRow struct {
	LoadDate    string  `json:"load_date"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Active      bool    `json:"active"`
	MessageType string  `json:"messageType"`
	Created     float64 `json:"created"`
}

// Row annotates the message with the partition date (YYYY-MM-DD).
func (x Message) Row(date types.ExportDate) MessageRow {
	return MessageRow{
		LoadDate:    date.ISO(),
		ID:          x.ID,
		Name:        x.Name,
		Active:      x.Active,
		MessageType: x.MessageType,
		Created:     x.Created,
	}
}

// MessagesResult summarizes a finished message export.
type MessagesResult struct {
	Table types.BQTableID
	Rows  int
}
