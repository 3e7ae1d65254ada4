// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/solar"
)

// Report contains every metric for a single day and location.
// Values that cannot be computed are nil.
type Report struct {
	Date      datetime.CalendarDate `yaml:"date"`
	Latitude  float64               `yaml:"latitude"`
	Longitude float64               `yaml:"longitude"`
	UTCOffset float64               `yaml:"utc_offset"`

	DaylightSeconds int    `yaml:"daylight_seconds"`
	DeltaDay        string `yaml:"delta_day"`
	DeltaSunrise    string `yaml:"delta_sunrise"`
	DeltaSunset     string `yaml:"delta_sunset"`
	DeltaWeek       string `yaml:"delta_week"`
	Trend           string `yaml:"trend"`

	Season         string                `yaml:"season"`
	SeasonProgress float64               `yaml:"season_progress"`
	NextSolstice   datetime.CalendarDate `yaml:"next_solstice"`
	DaysToSolstice int                   `yaml:"days_to_solstice"`
	PeakChange     datetime.CalendarDate `yaml:"peak_change"`

	SolarNoonAltitude float64  `yaml:"solar_noon_altitude"`
	EquationOfTime    float64  `yaml:"equation_of_time"`
	Declination       float64  `yaml:"declination"`
	SunriseAzimuth    *float64 `yaml:"sunrise_azimuth"`
	SunsetAzimuth     *float64 `yaml:"sunset_azimuth"`

	GoldenMorning     Span     `yaml:"golden_morning_minutes"`
	GoldenEvening     Span     `yaml:"golden_evening_minutes"`
	BlueHour          Span     `yaml:"blue_hour_minutes"`
	CivilTwilight     Span     `yaml:"civil_minutes"`
	NauticalTwilight  Span     `yaml:"nautical_minutes"`
	AstronomicalNight Span     `yaml:"astronomical_minutes"`
	GoldenElevation   *float64 `yaml:"golden_elevation"`
	PortraitTime      string   `yaml:"portrait_time"`
	LandscapeTime     string   `yaml:"landscape_time"`
	NoonLightQuality  string   `yaml:"noon_light_quality"`
	NoonShadowLength  *float64 `yaml:"noon_shadow_length"`
	SunDistanceKm     float64  `yaml:"sun_distance_km"`
	SolarIntensity    float64  `yaml:"solar_intensity"`
	ObjectHeight      float64  `yaml:"object_height"`
	Time              string   `yaml:"time"`
	TrueSolarTime     string   `yaml:"true_solar_time"`
	Altitude          float64  `yaml:"altitude"`
	LightQuality      string   `yaml:"light_quality"`
	ShadowLength      *float64 `yaml:"shadow_length"`
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func optional(v float64, ok bool, places int) *float64 {
	if !ok {
		return nil
	}
	r := round(v, places)
	return &r
}

func clock(hours float64, ok bool) string {
	if !ok {
		return solar.NoTime
	}
	return solar.FormatClock(hours)
}

// Summarize computes every metric for the day and location of ev. The
// metrics that depend on the time of day use the local clock time at and
// shadows are computed for an object of the given height.
func Summarize(ev solar.DailyEvents, at datetime.TimeOfDay, height float64) Report {
	cd, lat, long := ev.Date, ev.Latitude, ev.Longitude
	opt := solar.WithUTCOffset(ev.UTCOffset)
	r := Report{
		Date:      cd,
		Latitude:  lat,
		Longitude: long,
		UTCOffset: ev.UTCOffset,

		DaylightSeconds: DaylightSeconds(cd, lat),

		Season:         AstronomicalSeason(cd, lat).String(),
		SeasonProgress: SeasonProgress(cd),
		NextSolstice:   NextSolstice(cd),
		DaysToSolstice: DaysToSolstice(cd),
		PeakChange:     PeakChangeDate(cd, lat),

		SolarNoonAltitude: round(ev.NoonAltitude, 1),
		EquationOfTime:    round(ev.Position.EquationOfTime, 1),
		Declination:       round(ev.Position.Declination.Deg(), 2),

		BlueHour:          BlueDuration(ev),
		CivilTwilight:     CivilDuration(ev),
		NauticalTwilight:  NauticalDuration(ev),
		AstronomicalNight: AstronomicalDuration(ev),
		NoonLightQuality:  LightQualityOf(ev.NoonAltitude).String(),
		SunDistanceKm:     math.Round(SunDistanceKm(cd)),
		SolarIntensity:    round(SolarIntensity(cd), 1),
		ObjectHeight:      height,
		Time:              at.String(),
	}
	day := DeltaDayLength(cd, lat, -1)
	r.DeltaDay = DeltaLabel(float64(day), true)
	r.Trend = TrendOf(float64(day)).String()
	r.DeltaWeek = DeltaLabel(float64(DeltaWeek(cd, lat)), true)
	rise, ok := DeltaRiseSet(cd, lat, long, -1, solar.Sunrise, opt)
	r.DeltaSunrise = DeltaLabel(float64(rise), ok)
	set, ok := DeltaRiseSet(cd, lat, long, -1, solar.Sunset, opt)
	r.DeltaSunset = DeltaLabel(float64(set), ok)

	decl := ev.Position.Declination
	az, ok := SunriseAzimuth(lat, decl)
	r.SunriseAzimuth = optional(az, ok, 1)
	az, ok = SunsetAzimuth(lat, decl)
	r.SunsetAzimuth = optional(az, ok, 1)
	r.GoldenMorning, r.GoldenEvening = GoldenDuration(ev)
	ge, ok := GoldenElevation(ev)
	r.GoldenElevation = optional(ge, ok, 1)
	r.PortraitTime = clock(PortraitMid(ev))
	r.LandscapeTime = clock(LandscapeMid(ev))
	sl, ok := ShadowLength(ev.NoonAltitude, height)
	r.NoonShadowLength = optional(sl, ok, 2)

	r.TrueSolarTime = FormatMinutes(TrueSolarTime(cd, at, long, ev.UTCOffset))
	alt := AltitudeAt(ev, at)
	r.Altitude = round(alt, 1)
	r.LightQuality = LightQualityOf(alt).String()
	sl, ok = ShadowLength(alt, height)
	r.ShadowLength = optional(sl, ok, 2)
	return r
}
