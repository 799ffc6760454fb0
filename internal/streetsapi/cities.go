package streetsapi

import (
	"slices"
	"strings"
)

// cities - ключ города для CLI -> значение фильтра city_name в источнике.
var cities = map[string]string{
	"tel_aviv":        "תל אביב - יפו",
	"jerusalem":       "ירושלים",
	"haifa":           "חיפה",
	"rishon_lezion":   "ראשון לציון",
	"petah_tikva":     "פתח תקווה",
	"ashdod":          "אשדוד",
	"netanya":         "נתניה",
	"beer_sheva":      "באר שבע",
	"bnei_brak":       "בני ברק",
	"holon":           "חולון",
	"ramat_gan":       "רמת גן",
	"rehovot":         "רחובות",
	"ashkelon":        "אשקלון",
	"bat_yam":         "בת ים",
	"beit_shemesh":    "בית שמש",
	"kfar_saba":       "כפר סבא",
	"herzliya":        "הרצלייה",
	"hadera":          "חדרה",
	"modiin":          "מודיעין-מכבים-רעות",
	"nazareth":        "נצרת",
	"ramla":           "רמלה",
	"lod":             "לוד",
	"raanana":         "רעננה",
	"givatayim":       "גבעתיים",
	"eilat":           "אילת",
	"tiberias":        "טבריה",
	"nahariya":        "נהריה",
	"kiryat_gat":      "קרית גת",
	"afula":           "עפולה",
	"karmiel":         "כרמיאל",
	"hod_hasharon":    "הוד השרון",
	"rosh_haayin":     "ראש העין",
	"kiryat_ata":      "קרית אתא",
	"umm_al_fahm":     "אום אל-פחם",
	"dimona":          "דימונה",
	"safed":           "צפת",
	"or_yehuda":       "אור יהודה",
	"yavne":           "יבנה",
	"kiryat_shmona":   "קרית שמונה",
	"maalot_tarshiha": "מעלות-תרשיחא",
}

// CityName - значение фильтра для ключа города (ключ без учёта регистра и пробелов по краям).
func CityName(key string) (string, bool) {
	name, ok := cities[strings.ToLower(strings.TrimSpace(key))]
	return name, ok
}

// Cities - отсортированный список ключей.
func Cities() []string {
	keys := make([]string, 0, len(cities))
	for k := range cities {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
