package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

const LogFindCommandWord = "logfind"

const MessageLogFindError = "Unable to find logs: "

// LogFind scopes the log view to the person at Target in the displayed list
// of Role. A nil Target shows every log again.
type LogFind struct {
	Target *Index
	Role   domain.Role
}

func (c LogFind) Word() string { return LogFindCommandWord }

func (c LogFind) Execute(_ context.Context, model Model) (Result, error) {
	logs := model.MutableDatastore().MutableLogStore()
	if c.Target == nil {
		logs.UpdateFilteredLogList(nil)
		logs.UpdateFilteredLogListByPersonID(nil)
		return Result{Feedback: fmt.Sprintf(MessageLogsListedOverview, len(logs.FilteredLogList())), ShowLists: true}, nil
	}
	p, err := personAt(roleList(model.Datastore().PersonStore(), c.Role), *c.Target)
	if err != nil {
		return Result{}, fail(MessageLogFindError, err)
	}
	id := p.ID
	logs.UpdateFilteredLogListByPersonID(&id)
	return Result{Feedback: fmt.Sprintf(MessageLogsListedOverview, len(logs.FilteredLogList())), ShowLists: true}, nil
}
