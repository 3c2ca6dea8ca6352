package news

import (
	"fmt"
	"time"
)

// RecentLabel is used when an entry has no publication date.
const RecentLabel = "Recente"

var italianMonths = [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}

// RelativeDate renders the time elapsed between published and now as an
// Italian phrase: minutes under an hour, hours under a day, days under a week,
// and "day month" beyond that, in loc.
func RelativeDate(published, now time.Time, loc *time.Location) string {
	elapsed := now.Sub(published)
	minutes := int(elapsed / time.Minute)
	hours := int(elapsed / time.Hour)
	days := int(elapsed / (24 * time.Hour))

	switch {
	case minutes < 60:
		if minutes <= 1 {
			return "1 minuto fa"
		}
		return fmt.Sprintf("%d minuti fa", minutes)
	case hours < 24:
		if hours == 1 {
			return "1 ora fa"
		}
		return fmt.Sprintf("%d ore fa", hours)
	case days < 7:
		if days == 1 {
			return "1 giorno fa"
		}
		return fmt.Sprintf("%d giorni fa", days)
	}

	if loc == nil {
		loc = time.UTC
	}
	local := published.In(loc)
	return fmt.Sprintf("%d %s", local.Day(), italianMonths[local.Month()-1])
}
