package main

import (
	"fmt"
	"os"

	"github.com/emirpasic/gods/utils"
	"github.com/pengdafu/llist-golang/llist"
	"github.com/pengdafu/llist-golang/util"
	"gopkg.in/yaml.v3"
)

type employee struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func (e *employee) String() string {
	return fmt.Sprintf("id = %d, name = %s", e.ID, e.Name)
}

var employeeType = &llist.Type[*employee, int]{
	KeyOf:   func(e *employee) int { return e.ID },
	Compare: util.Comparator[int](utils.IntComparator),
}

func loadRoster(path string) ([]*employee, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var doc struct {
		Employees []*employee `yaml:"employees"`
	}
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	for i, e := range doc.Employees {
		if e == nil {
			return nil, fmt.Errorf("parse roster %s: empty record at %d", path, i)
		}
	}
	return doc.Employees, nil
}

// sortedHalves deals the roster alternately into two ascending lists.
func sortedHalves(roster []*employee) (*llist.List[*employee, int], *llist.List[*employee, int]) {
	even := llist.Create(employeeType, nil)
	odd := llist.Create(employeeType, nil)
	for i, e := range roster {
		if i%2 == 0 {
			even.AscInsert(e)
		} else {
			odd.AscInsert(e)
		}
	}
	return even, odd
}
