// Package region models the platform and routing regions of the Riot Games API.
//
// A Platform is a realm such as NA1 or EUW1 and is the host prefix for
// realm-local resources (summoners, leagues, status). A Routing region groups
// platforms by continent and is the host prefix for cross-realm resources
// (accounts, matches). Platform.Routing is total over the enumerated
// platforms and never changes at runtime.
//
// Parsing never falls back to a default:
//
//	p, err := region.Parse("euw")
//	if errors.Is(err, region.ErrUnknownRegion) {
//		// reject the input
//	}
package region
