// Package params derives a consistent, feasible event configuration from
// partial user input.
//
// 🚀 What does it resolve?
//
//	An event has a fixed number of tables, one sponsor permanently hosting
//	each table, and a population of rotators who change tables between rounds.
//	Users usually supply only some of {tables, rounds, people per table};
//	Resolve fills in the rest and reports every default or correction it made
//	as an advisory note.
//
// ⚙️ Resolution order:
//
//  1. TotalAttendees must be > 0.
//  2. Tables: supplied, else ceil(total/ppt) when ppt>1 is supplied, else
//     ceil(total/5). Never below 1.
//  3. Sponsors = Tables.
//  4. TotalAttendees must exceed Sponsors.
//  5. Rotators = TotalAttendees − Sponsors.
//  6. PeoplePerTable: supplied values below 2 fail; supplied values without
//     enough rotator capacity are raised to ceil(rotators/tables)+1; unset
//     values default to the same formula.
//  7. Rounds: supplied, else Sponsors (every rotator can visit every sponsor).
//  8. Coverage check: rounds×(ppt−1) < rotators adds a coverage note.
//
// Usage:
//
//	p, notes, err := params.Resolve(params.Input{TotalAttendees: 20})
//	if err != nil {
//	    // errors.Is(err, params.ErrInvalidInput)
//	}
//	fmt.Println(p.Tables, p.Rounds, notes.Messages())
//
// Resolve is pure: it performs no I/O and holds no state between calls.
package params
