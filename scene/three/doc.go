// Package three mirrors a scene.Scene into three.js objects through gopherjs.
// Everything but this comment is built for the js target only.
package three
