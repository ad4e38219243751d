package llist_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/pengdafu/llist-golang/llist"
	"github.com/pengdafu/llist-golang/util"
	"github.com/tychoish/fun/assert"
	"gopkg.in/yaml.v3"
)

type employee struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func (e *employee) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("id = %d, name = %s", e.ID, e.Name)
}

type roster map[int]*employee

// loadRoster returns fresh records from testdata/employees.yaml.
func loadRoster(t *testing.T) roster {
	t.Helper()
	buf, err := os.ReadFile("testdata/employees.yaml")
	assert.NotError(t, err)

	var doc struct {
		Employees []*employee `yaml:"employees"`
	}
	assert.NotError(t, yaml.Unmarshal(buf, &doc))

	r := make(roster, len(doc.Employees))
	for _, e := range doc.Employees {
		r[e.ID] = e
	}
	return r
}

func employeeID(e *employee) int {
	return e.ID
}

var compareInt = util.Comparator[int](utils.IntComparator)

// employeeType builds a behavior table whose Free records the ids it sees
// into freed, -1 for nil, when freed is not nil.
func employeeType(freed *[]int) *llist.Type[*employee, int] {
	typ := &llist.Type[*employee, int]{
		KeyOf:   employeeID,
		Compare: compareInt,
	}
	if freed != nil {
		typ.Free = func(e *employee) {
			id := -1
			if e != nil {
				id = e.ID
			}
			*freed = append(*freed, id)
		}
	}
	return typ
}

func newEmployeeList(freed *[]int) *llist.List[*employee, int] {
	return llist.Create(employeeType(freed), nil)
}

// ids walks l with a counted NextIter loop.
func ids(l *llist.List[*employee, int]) []int {
	out := make([]int, 0, l.Len())
	l.BeginIter()
	defer l.EndIter()
	for i := 0; i < l.Len(); i++ {
		e := l.NextIter()
		if e == nil {
			out = append(out, -1)
			continue
		}
		out = append(out, e.ID)
	}
	return out
}

func checkIDs(t *testing.T, l *llist.List[*employee, int], want ...int) {
	t.Helper()
	got := ids(l)
	assert.Equal(t, len(want), len(got))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
}
