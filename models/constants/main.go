package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout Refman and it's
	associated services.
*/
type Aligner string
type ResourceCategory string
