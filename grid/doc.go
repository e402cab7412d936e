// Package grid defines the fixed θ-axis discretization shared by every
// posterior in the engine and the rectangle-rule quadrature helpers used to
// turn a grid posterior into a mean and a standard deviation.
//
// Default() is the standard grid (θ ∈ [-4, 4], 161 nodes). Grids with other
// bounds/point-counts are built via NewSpec, which is how engineconfig
// applies its theta_min/theta_max/theta_points knobs. A Spec never changes
// after construction, which matters for the replay property (two independent
// sessions fed the same response history must reproduce theta/se
// bit-for-bit): that only holds when both integrate over exactly the same
// nodes.
package grid
