package constants

// Closed enums for the garment attribute set. Each enum that can be
// undeterminable from a photo carries an explicit unknown/na/none member;
// the extraction prompt tells the model to fall back to it and lower
// confidence instead of inventing labels.

var Patterns = []string{"solid", "stripe", "check", "floral", "dots", "graphic", "logo", "camo", "other"}

var MaterialFamilies = []string{"cotton", "denim", "wool", "cashmere", "silk", "linen", "leather", "synthetic", "blend", "other"}

var Fits = []string{"skinny", "slim", "regular", "relaxed", "oversized", "tailored", "unknown"}

var Lengths = []string{"crop", "short", "midi", "ankle", "full", "unknown"}

var Rises = []string{"low", "mid", "high", "na"}

var Sleeves = []string{"sleeveless", "short", "three-quarter", "long", "na"}

var Necklines = []string{"crew", "v-neck", "buttoned", "collared", "scoop", "turtleneck", "na"}

var Finishes = []string{"matte", "sheen", "satin", "gloss", "suede", "distressed", "quilted", "ribbed", "cable", "none"}
