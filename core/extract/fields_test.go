package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/casepipe/core"
)

func TestFirstMatching(t *testing.T) {
	fields := core.RawFieldMap{
		"Diary No.":  "12345/2020",
		"Status":     "PENDING",
		"Empty Cell": "",
	}

	assert.Equal(t, "12345/2020", FirstMatching(fields, []string{"Diary Number", "Diary No."}))
	assert.Equal(t, "PENDING", FirstMatching(fields, []string{"Status/Stage", "Status"}))
	assert.Equal(t, "", FirstMatching(fields, []string{"CNR Number", "CNR No."}))
	assert.Equal(t, "", FirstMatching(fields, nil))
	assert.Equal(t, "", FirstMatching(nil, []string{"Status"}))

	// A present but empty label still wins over later synonyms.
	fields["Status/Stage"] = ""
	assert.Equal(t, "", FirstMatching(fields, []string{"Status/Stage", "Status"}))
}

func TestDiaryNumber(t *testing.T) {
	assert.Equal(t, "12345/2020", DiaryNumber("12345/2020 Diary"))
	assert.Equal(t, "12345/2020", DiaryNumber("12345/2020 Filed on 03-02-2020 [SECTION: II]"))
	assert.Equal(t, "", DiaryNumber("no digits here"))
	assert.Equal(t, "", DiaryNumber(""))
	assert.Equal(t, "", DiaryNumber("12345/"))
}

func TestCaseNumberAndType(t *testing.T) {
	raw := "C.A. No. 001234 - 001235 / 2021 Registered on 15-03-2021 (Verified On 16-03-2021)"

	assert.Equal(t, "C.A. No. 001234 - 001235 / 2021", CaseNumber(raw))
	assert.Equal(t, "C.A.", CaseType(raw))
	assert.Equal(t, "15-03-2021", RegistrationDate(raw))

	assert.Equal(t, "SLP(C) 4567/2022", CaseNumber("  SLP(C) 4567/2022  "))
	assert.Equal(t, "", CaseType("SLP(C) 4567/2022"))
	assert.Equal(t, "", RegistrationDate("SLP(C) 4567/2022"))
	assert.Equal(t, "", CaseNumber(""))
}

func TestCaseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DISPOSED  Judgment dated 12-01-2023", "DISPOSED"},
		{"  PENDING (Motion Hearing)", "PENDING"},
		{"Pending", "P"},
		{"disposed", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaseStatus(tt.in), "input %q", tt.in)
	}
}

func TestFilingDate(t *testing.T) {
	assert.Equal(t, "03-02-2020", FilingDate("12345/2020 Filed on 03-02-2020 12:30 PM"))
	assert.Equal(t, "", FilingDate("12345/2020 Filed on 3-2-2020"))
	assert.Equal(t, "", FilingDate(""))
}

func TestBench(t *testing.T) {
	assert.Equal(t,
		"HON'BLE MR. JUSTICE A, HON'BLE MR. JUSTICE B",
		Bench("12-01-2023 [HON'BLE MR. JUSTICE A, HON'BLE MR. JUSTICE B]"))
	assert.Equal(t, "A [x] B", Bench("pre [A [x] B] post"))
	assert.Equal(t, "", Bench("no brackets here"))
	assert.Equal(t, "", Bench("only [ open"))
	assert.Equal(t, "c", Bench("a]b[c"))
}

func TestFirstJudge(t *testing.T) {
	assert.Equal(t, "SHARMA", FirstJudge("SHARMA, GUPTA and RAO"))
	assert.Equal(t, "SHARMA", FirstJudge("SHARMAandGUPTA"))
	assert.Equal(t, "SHARMA", FirstJudge("SHARMA AND GUPTA and RAO"))
	assert.Equal(t, "SINGLE JUDGE", FirstJudge(" SINGLE JUDGE "))
	assert.Equal(t, "", FirstJudge(""))
}

func TestLabelsMerge(t *testing.T) {
	custom := Labels{Status: []string{"Stage"}}
	merged := custom.Merge(DefaultLabels())

	assert.Equal(t, []string{"Stage"}, merged.Status)
	assert.Equal(t, DefaultLabels().DiaryNumber, merged.DiaryNumber)
	assert.Equal(t, DefaultLabels().LastListed, merged.LastListed)
}
