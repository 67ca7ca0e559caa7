package device

// Device type names as used in cookies, stores and logs.
const (
	NameNormal = "normal"
	NameMobile = "mobile"
	NameTablet = "tablet"
)

// Default subdomain labels.
const (
	DefaultMobileCode = "m"
	DefaultTabletCode = "t"
)

// Request headers inspected by the classifier.
const (
	HeaderUserAgent      = "User-Agent"
	HeaderAccept         = "Accept"
	HeaderWapProfile     = "X-Wap-Profile"
	HeaderProfile        = "Profile"
	HeaderForwardedProto = "X-Forwarded-Proto"
)

const (
	acceptWap       = "wap"
	operaMiniMarker = "OperaMini"
	mobileMarker    = "mobile"
	ipadMarker      = "ipad"
	minPrefixLength = 4
)
