package ast

// CollectAllNodes returns root and every node below it in source order.
func CollectAllNodes(root Node) []Node {
	var nodes []Node
	collectNodesRecursive(root, &nodes)
	return nodes
}

func collectNodesRecursive(node Node, nodes *[]Node) {
	if node == nil {
		return
	}

	*nodes = append(*nodes, node)

	switch n := node.(type) {
	case *Program:
		for _, decl := range n.Decls {
			collectNodesRecursive(decl, nodes)
		}

	case *FuncDecl:
		collectNodesRecursive(&n.Name, nodes)
		for _, param := range n.Params {
			collectNodesRecursive(param, nodes)
		}
		for _, result := range n.Results {
			collectNodesRecursive(result, nodes)
		}
		for _, block := range n.Blocks {
			collectNodesRecursive(block, nodes)
		}

	case *Binding:
		collectNodesRecursive(&n.Name, nodes)
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}
		if n.Ref != nil {
			collectNodesRecursive(n.Ref, nodes)
		}

	case *ArrayType:
		if n.Elem != nil {
			collectNodesRecursive(n.Elem, nodes)
		}

	case *VectExpr:
		for _, elem := range n.Elems {
			collectNodesRecursive(elem, nodes)
		}

	case *DefMut:
		collectNodesRecursive(&n.Name, nodes)
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *Block:
		for _, item := range n.Items {
			collectNodesRecursive(item, nodes)
		}
	}
}
