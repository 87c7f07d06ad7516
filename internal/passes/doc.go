// Package passes holds the structural typography passes that run around
// SmartyPants education: ampersand and capital-run wrapping, widow
// prevention, initial-quote hooks, and dash padding. Each pass is a total
// function from string to string.
//
// The wrapping passes emit spans for CSS hooks:
//
//	<span class="amp">&amp;</span>
//	<span class="caps">NASA</span>
//	<span class="dquo">&#8220;</span>
//	<span class="quo">&#8216;</span>
package passes
