package loyalty

// CanUse reports whether a user at userTier may redeem a voucher that
// requires requiredTier. An unknown tier on either side never qualifies.
func CanUse(userTier, requiredTier Tier) bool {
	if !userTier.Valid() || !requiredTier.Valid() {
		return false
	}
	return userTier.Position() >= requiredTier.Position()
}
