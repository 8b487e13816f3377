package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesMatchColumns(t *testing.T) {
	rec := CaseRecord{DiaryNumber: "1/2020", NumOrders: 3, TotalIA: 7}
	vals := rec.Values()

	assert.Len(t, vals, len(Columns))
	assert.Equal(t, "1/2020", vals[0])
	assert.Equal(t, "3", vals[20])
	assert.Equal(t, "7", vals[len(vals)-1])
}

func TestKey(t *testing.T) {
	assert.Equal(t, "1/2020", CaseRecord{DiaryNumber: "1/2020", CNRNumber: "SCIN01"}.Key())
	assert.Equal(t, "SCIN01", CaseRecord{CNRNumber: "SCIN01", CaseNumber: "C.A. 1/2020"}.Key())
	assert.Equal(t, "C.A. 1/2020", CaseRecord{CaseNumber: "C.A. 1/2020"}.Key())
	assert.Equal(t, "", CaseRecord{}.Key())
}
