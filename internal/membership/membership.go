// Package membership resolves whether an identity may see or contribute to a
// wallet. Membership is by label, not by account id: a wallet's member list
// is a set of free-text strings (emails or display names) matched against
// the requester, so wallets can be shared with people who have not
// registered yet. The trade-off is that renaming a display name can silently
// drop membership, and duplicate names collide.
package membership

import "strings"

// Delimiter joins member and category lists for storage. It must not appear
// inside a member or category name; callers validate that upstream.
const Delimiter = "|"

// Identity is the set of labels a requester can be recognized by.
type Identity struct {
	UserID uint   // Account id, matched against the wallet owner
	Email  string // Login email
	Name   string // Display name
}

// Split breaks a stored member/category string into its entries, dropping
// empties left behind by removals.
func Split(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, Delimiter) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Join builds the stored form of a member/category list.
func Join(entries []string) string {
	return strings.Join(entries, Delimiter)
}

// IsMember reports whether the identity may access a wallet with the given
// owner and stored member string. The owner is always a member regardless of
// the list content; everyone else matches case-insensitively on email or
// display name. A zero identity is never a member.
func IsMember(ownerID uint, members string, id Identity) bool {
	if id.UserID == 0 && id.Email == "" && id.Name == "" {
		return false
	}
	if id.UserID != 0 && id.UserID == ownerID {
		return true
	}
	for _, member := range Split(members) {
		if matches(member, id) {
			return true
		}
	}
	return false
}

// Remove filters out every entry matching the identity's email or display
// name. Matching is case-insensitive, the same policy as IsMember, so
// leaving a wallet cannot strand a differently-cased label that still grants
// read access.
func Remove(members []string, id Identity) []string {
	out := make([]string, 0, len(members))
	for _, member := range members {
		if !matches(member, id) {
			out = append(out, member)
		}
	}
	return out
}

// Dedupe collapses case-insensitive duplicates, keeping the last-seen casing
// and the position of the first occurrence.
func Dedupe(members []string) []string {
	index := make(map[string]int, len(members))
	var out []string
	for _, member := range members {
		key := strings.ToLower(member)
		if i, seen := index[key]; seen {
			out[i] = member
			continue
		}
		index[key] = len(out)
		out = append(out, member)
	}
	return out
}

func matches(member string, id Identity) bool {
	if id.Email != "" && strings.EqualFold(member, id.Email) {
		return true
	}
	return id.Name != "" && strings.EqualFold(member, id.Name)
}
