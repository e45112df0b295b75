// Package dispute models post-pickup weight audits reported by the carrier.
// A dispute records the gap between the weight the merchant entered and the
// weight the carrier measured, and stays pending until the merchant pays the
// excess charge, contests it with evidence, or the auto-accept deadline
// passes. The wallet debit for an accepted dispute is performed by the
// application layer inside the same transactional boundary as the category
// change.
package dispute
