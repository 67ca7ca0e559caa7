package device

// Built-in match tables. All entries are lower-case because the agent is
// lower-cased before matching. Configured extras are appended to these.
var (
	// knownMobilePrefixes are four-character vendor prefixes of feature phone agents.
	knownMobilePrefixes = []string{
		"w3c ", "w3c-", "acs-", "alav", "alca", "amoi", "audi", "avan", "benq",
		"bird", "blac", "blaz", "brew", "cell", "cldc", "cmd-", "dang", "doco",
		"eric", "hipt", "htc_", "inno", "ipaq", "ipod", "jigs", "kddi", "keji",
		"leno", "lg-c", "lg-d", "lg-g", "lge-", "lg/u", "maui", "maxo", "midp",
		"mits", "mmef", "mobi", "mot-", "moto", "mwbp", "nec-", "newt", "noki",
		"palm", "pana", "pant", "phil", "play", "port", "prox", "qwap", "sage",
		"sams", "sany", "sch-", "sec-", "send", "seri", "sgh-", "shar", "sie-",
		"siem", "smal", "smar", "sony", "sph-", "symb", "t-mo", "teli", "tim-",
		"tosh", "tsm-", "upg1", "upsi", "vk-v", "voda", "wap-", "wapa", "wapi",
		"wapp", "wapr", "webc", "winw", "xda ", "xda-",
	}

	// knownMobileKeywords match anywhere in the agent. "nintendo ds" also
	// covers the DSi.
	knownMobileKeywords = []string{
		"blackberry", "webos", "ipod", "lge vx", "midp", "maemo", "mmp", "mobile",
		"netfront", "hiptop", "nintendo ds", "novarra", "openweb", "opera mobi",
		"opera mini", "palm", "psp", "phone", "smartphone", "symbian", "up.browser",
		"up.link", "wap", "windows ce",
	}

	knownTabletKeywords = []string{"ipad", "playbook", "hp-tablet", "kindle"}
)
