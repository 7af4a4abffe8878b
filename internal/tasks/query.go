package tasks

import (
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/tasktracker/internal/storage"
)

// Query describes a task listing. Zero fields do not filter; with a Range the
// result uses the daily view order.
type Query struct {
	Range  *storage.TimeRange
	Search string
	Tag    string
}

// DayQuery returns a query for tasks with start <= OccursAt < end.
func DayQuery(start, end time.Time) Query {
	return Query{Range: &storage.TimeRange{Start: start, End: end}}
}

func (q Query) filter() storage.TaskFilter {
	return storage.TaskFilter{
		Range:  q.Range,
		Search: q.Search,
		Tag:    q.Tag,
	}
}

// key - ключ для общих live подписок: одинаковые запросы дают одинаковый ключ
func (q Query) key() string {
	var sb strings.Builder
	if q.Range != nil {
		sb.WriteString("range=")
		sb.WriteString(strconv.FormatInt(q.Range.Start.UnixMilli(), 10))
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatInt(q.Range.End.UnixMilli(), 10))
	}
	sb.WriteString("&q=")
	sb.WriteString(strconv.Quote(q.Search))
	sb.WriteString("&tag=")
	sb.WriteString(strconv.Quote(q.Tag))
	return sb.String()
}
