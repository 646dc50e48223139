// Package css provides the typed values used by styled components.
//
// Sizes are (magnitude, unit) pairs that serialize without rounding or unit
// conversion:
//
//	css.Px(10).String()      // "10px"
//	css.Perc(33.5).String()  // "33.5%"
//
// Colors, borders and backgrounds are small comparable structs so they can be
// stored in observable fields and compared before invalidating caches.
package css
