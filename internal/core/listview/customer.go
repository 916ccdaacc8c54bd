package listview

import (
	"time"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// Customer status filter keys. The three "pending action" statuses split
// into temporal sub-buckets derived from the next-meeting date.
const (
	StatusAll                  = "all"
	StatusNeedToContactToday   = "NeedToContactToday"
	StatusNeedToContactDelayed = "NeedToContactDelayed"
	StatusFollowUpToday        = "NeedToFollowUpToday"
	StatusFollowUpDelayed      = "NeedToFollowUpDelayed"
)

// CustomerFilter bundles the independent filter dimensions of the customer
// list. Zero values mean "match everything" for that dimension.
type CustomerFilter struct {
	Search     string
	StatusKey  string
	CreatedBy  string
	AssignedTo string
	Created    DateBucket
}

// Predicate builds the combined predicate for this filter, evaluated
// relative to now. All active dimensions are ANDed.
func (f CustomerFilter) Predicate(now time.Time) Predicate[domain.Customer] {
	return And(
		customerSearch(f.Search),
		customerStatus(f.StatusKey, now),
		customerCreatedBy(f.CreatedBy),
		customerAssignedTo(f.AssignedTo),
		customerCreatedIn(f.Created, now),
	)
}

// customerSearch matches the query as a case-insensitive substring of the
// customer name or contact number; either field matching is enough.
func customerSearch(query string) Predicate[domain.Customer] {
	if query == "" {
		return nil
	}
	return func(c domain.Customer) bool {
		return containsFold(c.Name, query) || containsFold(c.Contact, query)
	}
}

// customerStatus resolves a status key, including the today/delayed
// sub-buckets, against the customer's contact status and next-meeting date.
// The plain bucket of a splittable status excludes its today and delayed
// sub-buckets, mirroring the stats cards.
func customerStatus(key string, now time.Time) Predicate[domain.Customer] {
	if key == "" || key == StatusAll {
		return nil
	}
	return func(c domain.Customer) bool {
		due := ClassifyDue(c.NextMeetingDate, now)
		switch key {
		case string(domain.StatusContacted), string(domain.StatusNotResponding):
			return string(c.ContactStatus) == key
		case string(domain.StatusNeedToContact):
			return c.ContactStatus == domain.StatusNeedToContact && due != DueToday && due != DueOverdue
		case StatusNeedToContactToday:
			return c.ContactStatus == domain.StatusNeedToContact && due == DueToday
		case StatusNeedToContactDelayed:
			return c.ContactStatus == domain.StatusNeedToContact && due == DueOverdue
		case string(domain.StatusNeedToFollowUp):
			return c.ContactStatus == domain.StatusNeedToFollowUp && due != DueToday && due != DueOverdue
		case StatusFollowUpToday:
			return c.ContactStatus == domain.StatusNeedToFollowUp && due == DueToday
		case StatusFollowUpDelayed:
			return c.ContactStatus == domain.StatusNeedToFollowUp && due == DueOverdue
		default:
			return string(c.ContactStatus) == key
		}
	}
}

func customerCreatedBy(userID string) Predicate[domain.Customer] {
	if userID == "" {
		return nil
	}
	return func(c domain.Customer) bool { return c.CreatedBy == userID }
}

func customerAssignedTo(userID string) Predicate[domain.Customer] {
	if userID == "" {
		return nil
	}
	return func(c domain.Customer) bool { return c.AssignedTo == userID }
}

func customerCreatedIn(bucket DateBucket, now time.Time) Predicate[domain.Customer] {
	if bucket == BucketAny {
		return nil
	}
	return func(c domain.Customer) bool { return bucket.Contains(c.CreatedDate, now) }
}

// CustomerStats are the per-bucket counts shown on the customer stats cards.
type CustomerStats struct {
	Total                 int `json:"total"`
	Contacted             int `json:"contacted"`
	NeedToContact         int `json:"needToContact"`
	NeedToContactToday    int `json:"needToContactToday"`
	NeedToContactDelayed  int `json:"needToContactDelayed"`
	NeedToFollowUp        int `json:"needToFollowUp"`
	NeedToFollowUpToday   int `json:"needToFollowUpToday"`
	NeedToFollowUpDelayed int `json:"needToFollowUpDelayed"`
	NotResponding         int `json:"notResponding"`
}

// CountCustomerStats classifies every customer into exactly one bucket,
// relative to now.
func CountCustomerStats(customers []domain.Customer, now time.Time) CustomerStats {
	var st CustomerStats
	st.Total = len(customers)
	for _, c := range customers {
		due := ClassifyDue(c.NextMeetingDate, now)
		switch c.ContactStatus {
		case domain.StatusContacted:
			st.Contacted++
		case domain.StatusNotResponding:
			st.NotResponding++
		case domain.StatusNeedToContact:
			switch due {
			case DueToday:
				st.NeedToContactToday++
			case DueOverdue:
				st.NeedToContactDelayed++
			default:
				st.NeedToContact++
			}
		case domain.StatusNeedToFollowUp:
			switch due {
			case DueToday:
				st.NeedToFollowUpToday++
			case DueOverdue:
				st.NeedToFollowUpDelayed++
			default:
				st.NeedToFollowUp++
			}
		}
	}
	return st
}
