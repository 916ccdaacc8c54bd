package listview

import (
	"testing"
	"time"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func testCustomers() []domain.Customer {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	return []domain.Customer{
		{ID: "1", Name: "Omar Farouk", Contact: "+2010111", ContactStatus: domain.StatusContacted, CreatedDate: now},
		{ID: "2", Name: "Layla Said", Contact: "+2010222", ContactStatus: domain.StatusNeedToContact, NextMeetingDate: datePtr(now), CreatedDate: now.AddDate(0, 0, -3)},
		{ID: "3", Name: "Karim Adel", Contact: "+2010333", ContactStatus: domain.StatusNeedToContact, NextMeetingDate: datePtr(yesterday), CreatedDate: now.AddDate(0, -1, 0)},
		{ID: "4", Name: "Nour Ehab", Contact: "+2010444", ContactStatus: domain.StatusNeedToContact, NextMeetingDate: datePtr(tomorrow), CreatedDate: now},
		{ID: "5", Name: "Hana Tarek", Contact: "+2010555", ContactStatus: domain.StatusNeedToFollowUp, NextMeetingDate: datePtr(yesterday), CreatedDate: now},
		{ID: "6", Name: "Omar Samir", Contact: "+2010666", ContactStatus: domain.StatusNotResponding, CreatedDate: now},
	}
}

func filterIDs(t *testing.T, f CustomerFilter) []string {
	t.Helper()
	matched := Filter(testCustomers(), f.Predicate(now))
	ids := make([]string, 0, len(matched))
	for _, c := range matched {
		ids = append(ids, c.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("matched %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matched %v, want %v", got, want)
		}
	}
}

func TestSearchMatchesNameOrContact(t *testing.T) {
	assertIDs(t, filterIDs(t, CustomerFilter{Search: "omar"}), []string{"1", "6"})
	assertIDs(t, filterIDs(t, CustomerFilter{Search: "2010333"}), []string{"3"})
	assertIDs(t, filterIDs(t, CustomerFilter{Search: "LAYLA"}), []string{"2"})
	assertIDs(t, filterIDs(t, CustomerFilter{Search: "nobody"}), nil)
}

func TestStatusSubBuckets(t *testing.T) {
	// Meeting today → the "today" sub-bucket, not the plain bucket.
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: StatusNeedToContactToday}), []string{"2"})
	// Meeting yesterday → delayed.
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: StatusNeedToContactDelayed}), []string{"3"})
	// Plain bucket keeps only future or unscheduled meetings.
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: string(domain.StatusNeedToContact)}), []string{"4"})
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: StatusFollowUpDelayed}), []string{"5"})
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: string(domain.StatusContacted)}), []string{"1"})
}

func TestStatusAllIsNoFilter(t *testing.T) {
	assertIDs(t, filterIDs(t, CustomerFilter{StatusKey: StatusAll}),
		[]string{"1", "2", "3", "4", "5", "6"})
}

func TestCreatedDateBuckets(t *testing.T) {
	assertIDs(t, filterIDs(t, CustomerFilter{Created: BucketToday}), []string{"1", "4", "5", "6"})
	// Week includes today and the 3-days-ago record; month excludes only the
	// previous-month one.
	assertIDs(t, filterIDs(t, CustomerFilter{Created: BucketLastWeek}), []string{"1", "2", "4", "5", "6"})
	assertIDs(t, filterIDs(t, CustomerFilter{Created: BucketThisMonth}), []string{"1", "2", "4", "5", "6"})
}

func TestDimensionsCombineWithAnd(t *testing.T) {
	f := CustomerFilter{Search: "omar", StatusKey: string(domain.StatusContacted)}
	assertIDs(t, filterIDs(t, f), []string{"1"})
}

func TestClassifyDue(t *testing.T) {
	if got := ClassifyDue(nil, now); got != DueNone {
		t.Errorf("nil date: %v", got)
	}
	// Late evening yesterday is still overdue; time of day is ignored.
	lateYesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	if got := ClassifyDue(&lateYesterday, now); got != DueOverdue {
		t.Errorf("yesterday 23:59: %v, want DueOverdue", got)
	}
	earlyToday := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	if got := ClassifyDue(&earlyToday, now); got != DueToday {
		t.Errorf("today 00:01: %v, want DueToday", got)
	}
}

func TestCountCustomerStats(t *testing.T) {
	st := CountCustomerStats(testCustomers(), now)
	if st.Total != 6 {
		t.Fatalf("Total = %d", st.Total)
	}
	if st.Contacted != 1 || st.NotResponding != 1 {
		t.Errorf("terminal buckets: %+v", st)
	}
	if st.NeedToContactToday != 1 || st.NeedToContactDelayed != 1 || st.NeedToContact != 1 {
		t.Errorf("need-to-contact split: %+v", st)
	}
	if st.NeedToFollowUpDelayed != 1 {
		t.Errorf("follow-up split: %+v", st)
	}

	// Buckets partition the collection: the sum equals the total.
	sum := st.Contacted + st.NotResponding +
		st.NeedToContact + st.NeedToContactToday + st.NeedToContactDelayed +
		st.NeedToFollowUp + st.NeedToFollowUpToday + st.NeedToFollowUpDelayed
	if sum != st.Total {
		t.Errorf("buckets sum to %d, total is %d", sum, st.Total)
	}
}

func TestParseDateBucket(t *testing.T) {
	if ParseDateBucket(" Today ") != BucketToday {
		t.Error("today not parsed")
	}
	if ParseDateBucket("garbage") != BucketAny {
		t.Error("unknown input should mean no filtering")
	}
}
