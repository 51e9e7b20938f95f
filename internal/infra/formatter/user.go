package formatter

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/recordstore"
)

// ToUser maps a raw user record to the domain shape. Loyalty falls back to
// bronze and preferences to the registration defaults.
func ToUser(rec recordstore.RawRecord) user.User {
	loyalty, err := user.ParseLoyaltyStatus(str(rec, "loyalty_status_c"))
	if err != nil {
		loyalty = user.LoyaltyBronze
	}

	prefs := user.DefaultPreferences()
	if v, ok := rec["pref_room_type_c"]; ok && v != nil {
		prefs.RoomType = str(rec, "pref_room_type_c")
	}
	if v, ok := rec["pref_bed_type_c"]; ok && v != nil {
		prefs.BedType = str(rec, "pref_bed_type_c")
	}
	if v, ok := rec["pref_smoking_c"]; ok && v != nil {
		prefs.SmokingPreference = str(rec, "pref_smoking_c")
	}
	if v, ok := rec["pref_floor_c"]; ok && v != nil {
		prefs.FloorPreference = str(rec, "pref_floor_c")
	}
	if v, ok := rec["pref_newsletter_c"]; ok && v != nil {
		prefs.Newsletter = boolean(rec, "pref_newsletter_c")
	}

	return user.User{
		ID:            num(rec, "Id"),
		Email:         str(rec, "email_c"),
		FirstName:     str(rec, "first_name_c"),
		LastName:      str(rec, "last_name_c"),
		Name:          str(rec, "name_c"),
		Phone:         str(rec, "phone_c"),
		Avatar:        str(rec, "avatar_c"),
		LoyaltyStatus: loyalty,
		MemberSince:   date(rec, "member_since_c"),
		TotalBookings: num(rec, "total_bookings_c"),
		Preferences:   prefs,
		PasswordHash:  str(rec, "password_hash_c"),
		CreatedAt:     timestamp(rec, "created_at_c"),
	}
}

func FromUserFields(u user.User) recordstore.RawRecord {
	return recordstore.RawRecord{
		"email_c":           u.Email,
		"first_name_c":      u.FirstName,
		"last_name_c":       u.LastName,
		"name_c":            u.Name,
		"phone_c":           u.Phone,
		"avatar_c":          u.Avatar,
		"loyalty_status_c":  string(u.LoyaltyStatus),
		"member_since_c":    formatDate(u.MemberSince),
		"total_bookings_c":  u.TotalBookings,
		"pref_room_type_c":  u.Preferences.RoomType,
		"pref_bed_type_c":   u.Preferences.BedType,
		"pref_smoking_c":    u.Preferences.SmokingPreference,
		"pref_floor_c":      u.Preferences.FloorPreference,
		"pref_newsletter_c": u.Preferences.Newsletter,
		"password_hash_c":   u.PasswordHash,
		"created_at_c":      formatTimestamp(u.CreatedAt),
	}
}

// FromPreferenceFields builds a partial update touching only preference
// columns.
func FromPreferenceFields(p user.Preferences) recordstore.RawRecord {
	return recordstore.RawRecord{
		"pref_room_type_c":  p.RoomType,
		"pref_bed_type_c":   p.BedType,
		"pref_smoking_c":    p.SmokingPreference,
		"pref_floor_c":      p.FloorPreference,
		"pref_newsletter_c": p.Newsletter,
	}
}
