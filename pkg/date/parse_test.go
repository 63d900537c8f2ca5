package date

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParseDay(t *testing.T) {
	today := Of(2024, time.June, 15)
	tests := []struct {
		name    string
		args    []string
		want    Date
		wantErr bool
	}{
		{"empty is today", []string{"", " "}, today, false},
		{"day only", []string{"1", " 1 "}, Of(2024, time.June, 1), false},
		{"day and month", []string{"1/2", "1-2"}, Of(2024, time.February, 1), false},
		{"full date", []string{"1/2/2023", "1-2-2023"}, Of(2023, time.February, 1), false},
		{"day out of bounds", []string{"31"}, Date{}, true}, // june has 30 days
		{"month out of bounds", []string{"1/13", "1/0"}, Date{}, true},
		{"not a number", []string{"x", "1/x", "1/2/x"}, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, arg := range tt.args {
				got, err := ParseDay(arg, today)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseDay(%q) error = %v, wantErr %v", arg, err, tt.wantErr)
					return
				}
				if !tt.wantErr && got != tt.want {
					t.Errorf("ParseDay(%q) = %v, want %v", arg, got, tt.want)
				}
			}
		})
	}
}

func TestParseDay_LeapDay(t *testing.T) {
	is := is.New(t)

	today := Of(2024, time.February, 10)
	got, err := ParseDay("29", today)
	is.NoErr(err)
	is.Equal(got, Of(2024, time.February, 29))

	_, err = ParseDay("29/2/2023", Of(2023, time.January, 1))
	is.True(err != nil)
}

func TestParseClock(t *testing.T) {
	now := ClockOf(14, 37)
	last := ClockOf(12, 5)
	tests := []struct {
		name      string
		args      []string
		assumeNow bool
		last      *Clock
		want      Clock
		wantErr   bool
	}{
		{"explicit", []string{"9:30", "09:30", " 9 : 30 "}, false, nil, ClockOf(9, 30), false},
		{"now keyword", []string{"now", "NOW"}, false, nil, now, false},
		{"empty assumes now", []string{""}, true, nil, now, false},
		{"last keyword", []string{"last", "LAST"}, false, &last, last, false},
		{"last without previous", []string{"last"}, false, nil, Clock{}, true},
		{"bare current hour adopts current minute", []string{"14", "14:"}, false, nil, now, false},
		{"bare other hour rejected", []string{"9"}, false, nil, Clock{}, true},
		{"invalid hour", []string{"x:30", ":30"}, false, nil, Clock{}, true},
		{"invalid minute", []string{"9:x"}, false, nil, Clock{}, true},
		{"out of bounds", []string{"24:00", "9:60"}, false, nil, Clock{}, true},
		{"empty without assume", []string{""}, false, nil, Clock{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, arg := range tt.args {
				got, err := ParseClock(arg, tt.assumeNow, tt.last, now)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseClock(%q) error = %v, wantErr %v", arg, err, tt.wantErr)
					return
				}
				if !tt.wantErr && got != tt.want {
					t.Errorf("ParseClock(%q) = %v, want %v", arg, got, tt.want)
				}
			}
		})
	}
}
