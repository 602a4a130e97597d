package completeness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullInput() Input {
	return Input{
		Name:            "Anita Rao",
		Email:           "anita@example.com",
		Phone:           "9876543210",
		Education:       2,
		Projects:        1,
		Skills:          3,
		Certifications:  1,
		Achievements:    1,
		Extracurricular: 1,
	}
}

func TestScore_Bounds(t *testing.T) {
	assert.Equal(t, 0, Score(Input{}))
	assert.Equal(t, 100, Score(fullInput()))
}

func TestScore_ContactFieldsAreJoint(t *testing.T) {
	in := Input{Name: "Anita Rao", Email: "anita@example.com"}
	assert.Equal(t, 0, Score(in), "phone missing, contact predicate must not count")

	in.Phone = "   "
	assert.Equal(t, 0, Score(in), "whitespace-only phone does not count")

	in.Phone = "9876543210"
	assert.Equal(t, 14, Score(in), "1/7 rounded")
}

func TestScore_PartialCounts(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"one collection", Input{Education: 1}, 14},
		{"two collections", Input{Education: 1, Projects: 4}, 29},
		{"three collections", Input{Education: 1, Projects: 1, Skills: 1}, 43},
		{"six of seven", func() Input {
			in := fullInput()
			in.Phone = ""
			return in
		}(), 86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.in))
		})
	}
}

func TestScore_Monotonic(t *testing.T) {
	base := Input{Name: "A", Email: "a@b.c", Phone: "1"}
	prev := Score(base)

	grow := []func(*Input){
		func(in *Input) { in.Education++ },
		func(in *Input) { in.Projects++ },
		func(in *Input) { in.Skills++ },
		func(in *Input) { in.Certifications++ },
		func(in *Input) { in.Achievements++ },
		func(in *Input) { in.Extracurricular++ },
	}
	for _, step := range grow {
		step(&base)
		cur := Score(base)
		assert.GreaterOrEqual(t, cur, prev, "adding an entry must never lower the score")
		prev = cur
	}
	assert.Equal(t, 100, prev)
}
