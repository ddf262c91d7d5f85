// internals/features/prayers/service/prayer_stats_service.go
package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/prayers/model"
)

const dateLayout = "2006-01-02"

/* ==========================
   Pure aggregation
========================== */

type TypeStat struct {
	PrayerType model.PrayerType `json:"prayer_type"`
	Prayed     int              `json:"prayed"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
}

type DayStat struct {
	Date       string `json:"date"`
	Prayed     int    `json:"prayed"`
	Percentage int    `json:"percentage"` // prayed / 5
}

type StatsSummary struct {
	PerType    []TypeStat `json:"per_type"`
	Days       []DayStat  `json:"days"`
	Prayed     int        `json:"prayed"`
	Total      int        `json:"total"`
	Percentage int        `json:"percentage"`
	Streak     int        `json:"streak"`
}

// roundPercent returns prayed/total as a display percentage. An empty window
// yields 0, never a division by zero.
func roundPercent(prayed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(prayed) / float64(total) * 100))
}

// ComputeSummary aggregates a set of prayer records. Days without a record
// for a given type simply do not contribute to that type's denominator;
// missing rows are never counted as missed.
func ComputeSummary(records []model.PrayerRecordModel) StatsSummary {
	byType := make(map[model.PrayerType]*TypeStat, len(model.AllPrayerTypes))
	for _, t := range model.AllPrayerTypes {
		byType[t] = &TypeStat{PrayerType: t}
	}
	byDay := make(map[string]*DayStat)

	prayedTotal, total := 0, 0
	for _, r := range records {
		ts, ok := byType[r.PrayerRecordType]
		if !ok {
			continue
		}
		ts.Total++
		total++

		key := r.PrayerRecordDate.Format(dateLayout)
		ds, ok := byDay[key]
		if !ok {
			ds = &DayStat{Date: key}
			byDay[key] = ds
		}

		if r.PrayerRecordStatus == model.PrayerStatusPrayed {
			ts.Prayed++
			ds.Prayed++
			prayedTotal++
		}
	}

	out := StatsSummary{
		Prayed:     prayedTotal,
		Total:      total,
		Percentage: roundPercent(int64(prayedTotal), int64(total)),
		Streak:     ComputeStreak(records),
	}
	for _, t := range model.AllPrayerTypes {
		ts := byType[t]
		ts.Percentage = roundPercent(int64(ts.Prayed), int64(ts.Total))
		out.PerType = append(out.PerType, *ts)
	}
	days := make([]string, 0, len(byDay))
	for k := range byDay {
		days = append(days, k)
	}
	sortStrings(days)
	for _, k := range days {
		ds := byDay[k]
		ds.Percentage = roundPercent(int64(ds.Prayed), int64(len(model.AllPrayerTypes)))
		out.Days = append(out.Days, *ds)
	}
	return out
}

// ComputeStreak counts consecutive fully-prayed days walking backward from
// the most recent date that has any record. The walk stops at the first day
// that is not fully prayed or has no records at all.
func ComputeStreak(records []model.PrayerRecordModel) int {
	prayedByDay := make(map[string]map[model.PrayerType]bool)
	hasRecord := make(map[string]bool)
	var latest time.Time

	for _, r := range records {
		day := r.PrayerRecordDate.Format(dateLayout)
		hasRecord[day] = true
		d, _ := time.Parse(dateLayout, day)
		if d.After(latest) {
			latest = d
		}
		if r.PrayerRecordStatus == model.PrayerStatusPrayed {
			set, ok := prayedByDay[day]
			if !ok {
				set = make(map[model.PrayerType]bool, len(model.AllPrayerTypes))
				prayedByDay[day] = set
			}
			set[r.PrayerRecordType] = true
		}
	}

	if latest.IsZero() {
		return 0
	}

	streak := 0
	for d := latest; ; d = d.AddDate(0, 0, -1) {
		key := d.Format(dateLayout)
		if !hasRecord[key] {
			break
		}
		if len(prayedByDay[key]) != len(model.AllPrayerTypes) {
			break
		}
		streak++
	}
	return streak
}

// ScopeCount holds prayed/total counts for one aggregation scope (an area,
// or the unassigned bucket).
type ScopeCount struct {
	AreaID *uuid.UUID `json:"area_id,omitempty"`
	Prayed int64      `json:"prayed"`
	Total  int64      `json:"total"`
}

// CombinePercentage sums numerators and denominators across scopes before
// dividing, so mixed scope sizes do not distort the global figure the way an
// average of per-scope percentages would.
func CombinePercentage(scopes []ScopeCount) int {
	var prayed, total int64
	for _, s := range scopes {
		prayed += s.Prayed
		total += s.Total
	}
	return roundPercent(prayed, total)
}

// insertion sort; day lists are small
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

/* ==========================
   DB-backed queries
========================== */

// fetchUserRecords loads one user's records for an inclusive date range.
func fetchUserRecords(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]model.PrayerRecordModel, error) {
	var rows []model.PrayerRecordModel
	if err := db.Where("prayer_record_user_id = ? AND prayer_record_date >= ? AND prayer_record_date <= ?",
		userID, from, to).
		Find(&rows).Error; err != nil {
		return nil, apperr.From(err)
	}
	return rows, nil
}

// GetUserStats computes a member's summary over an inclusive date range.
func GetUserStats(db *gorm.DB, userID uuid.UUID, from, to time.Time) (*StatsSummary, error) {
	rows, err := fetchUserRecords(db, userID, from, to)
	if err != nil {
		return nil, err
	}
	s := ComputeSummary(rows)
	return &s, nil
}

// OverviewStats is the dashboard payload: progressively wider windows plus
// the current streak.
type OverviewStats struct {
	Today     StatsSummary `json:"today"`
	ThisWeek  StatsSummary `json:"this_week"`
	ThisMonth StatsSummary `json:"this_month"`
	Streak    int          `json:"streak"`
}

// GetUserOverview computes today/week/month windows. The streak is computed
// over the trailing year so an unbroken run is not cut off at a window edge.
func GetUserOverview(db *gorm.DB, userID uuid.UUID, now time.Time) (*OverviewStats, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int((now.Weekday()+6)%7)) // Monday
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	yearAgo := today.AddDate(-1, 0, 0)

	rows, err := fetchUserRecords(db, userID, yearAgo, today)
	if err != nil {
		return nil, err
	}

	filter := func(from time.Time) []model.PrayerRecordModel {
		out := make([]model.PrayerRecordModel, 0, len(rows))
		for _, r := range rows {
			if !r.PrayerRecordDate.Before(from) {
				out = append(out, r)
			}
		}
		return out
	}

	return &OverviewStats{
		Today:     ComputeSummary(filter(today)),
		ThisWeek:  ComputeSummary(filter(weekStart)),
		ThisMonth: ComputeSummary(filter(monthStart)),
		Streak:    ComputeStreak(rows),
	}, nil
}

// scopeCount counts prayed/total for active users, optionally restricted to
// one area. areaID == nil means all active users regardless of assignment.
func scopeCount(db *gorm.DB, areaID *uuid.UUID, from, to time.Time) (ScopeCount, error) {
	base := db.Model(&model.PrayerRecordModel{}).
		Joins("JOIN users ON users.user_id = prayer_records.prayer_record_user_id").
		Where("users.user_is_active = ?", true).
		Where("prayer_record_date >= ? AND prayer_record_date <= ?", from, to)
	if areaID != nil {
		base = base.Where("users.user_area_id = ?", *areaID)
	}

	var sc ScopeCount
	sc.AreaID = areaID
	if err := base.Session(&gorm.Session{}).Count(&sc.Total).Error; err != nil {
		return sc, apperr.From(err)
	}
	if err := base.Session(&gorm.Session{}).
		Where("prayer_record_status = ?", model.PrayerStatusPrayed).
		Count(&sc.Prayed).Error; err != nil {
		return sc, apperr.From(err)
	}
	return sc, nil
}

// AreaStats is a founder's aggregate over their area.
type AreaStats struct {
	Scope      ScopeCount `json:"scope"`
	Percentage int        `json:"percentage"`
}

func GetAreaStats(db *gorm.DB, areaID uuid.UUID, from, to time.Time) (*AreaStats, error) {
	sc, err := scopeCount(db, &areaID, from, to)
	if err != nil {
		return nil, err
	}
	return &AreaStats{Scope: sc, Percentage: roundPercent(sc.Prayed, sc.Total)}, nil
}

// GlobalStats is the superadmin aggregate: per-area counts plus the combined
// percentage computed from summed counts. Users without an area are included
// in the global totals.
type GlobalStats struct {
	Scopes     []ScopeCount `json:"scopes"`
	Prayed     int64        `json:"prayed"`
	Total      int64        `json:"total"`
	Percentage int          `json:"percentage"`
}

func GetGlobalStats(db *gorm.DB, from, to time.Time) (*GlobalStats, error) {
	// One grouped query per status bucket keeps this to two round trips.
	type row struct {
		AreaID *uuid.UUID `gorm:"column:area_id"`
		Prayed int64      `gorm:"column:prayed"`
		Total  int64      `gorm:"column:total"`
	}
	var rows []row
	err := db.Model(&model.PrayerRecordModel{}).
		Select("users.user_area_id AS area_id, "+
			"SUM(CASE WHEN prayer_record_status = ? THEN 1 ELSE 0 END) AS prayed, "+
			"COUNT(*) AS total", model.PrayerStatusPrayed).
		Joins("JOIN users ON users.user_id = prayer_records.prayer_record_user_id").
		Where("users.user_is_active = ?", true).
		Where("prayer_record_date >= ? AND prayer_record_date <= ?", from, to).
		Group("users.user_area_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.From(err)
	}

	out := &GlobalStats{}
	for _, r := range rows {
		sc := ScopeCount{AreaID: r.AreaID, Prayed: r.Prayed, Total: r.Total}
		out.Scopes = append(out.Scopes, sc)
		out.Prayed += r.Prayed
		out.Total += r.Total
	}
	out.Percentage = roundPercent(out.Prayed, out.Total)
	return out, nil
}
