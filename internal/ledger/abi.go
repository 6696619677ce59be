package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const fundTrackerABI = `[
{"type":"function","name":"addAdmin","stateMutability":"nonpayable","inputs":[{"name":"_admin","type":"address"}],"outputs":[]},
{"type":"function","name":"addGovernmentOfficial","stateMutability":"nonpayable","inputs":[{"name":"_official","type":"address"}],"outputs":[]},
{"type":"function","name":"removeGovernmentOfficial","stateMutability":"nonpayable","inputs":[{"name":"_official","type":"address"}],"outputs":[]},
{"type":"function","name":"createProject","stateMutability":"nonpayable","inputs":[{"name":"_dataHash","type":"bytes32"},{"name":"_allocatedAmount","type":"uint256"},{"name":"_projectOwner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"spendFunds","stateMutability":"nonpayable","inputs":[{"name":"_projectId","type":"uint256"},{"name":"_amount","type":"uint256"},{"name":"_category","type":"string"},{"name":"_descriptionHash","type":"bytes32"}],"outputs":[]},
{"type":"function","name":"setProjectStatus","stateMutability":"nonpayable","inputs":[{"name":"_projectId","type":"uint256"},{"name":"_newStatus","type":"uint8"}],"outputs":[]},
{"type":"function","name":"addApprover","stateMutability":"nonpayable","inputs":[{"name":"_projectId","type":"uint256"},{"name":"_approver","type":"address"}],"outputs":[]},
{"type":"function","name":"getProjectCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getProject","stateMutability":"view","inputs":[{"name":"_projectId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[
	{"name":"dataHash","type":"bytes32"},
	{"name":"allocatedAmount","type":"uint256"},
	{"name":"spentAmount","type":"uint256"},
	{"name":"projectOwner","type":"address"},
	{"name":"approvers","type":"address[]"},
	{"name":"isActive","type":"bool"},
	{"name":"createdAt","type":"uint256"},
	{"name":"status","type":"uint8"}]}]},
{"type":"function","name":"getAllProjects","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[
	{"name":"dataHash","type":"bytes32"},
	{"name":"allocatedAmount","type":"uint256"},
	{"name":"spentAmount","type":"uint256"},
	{"name":"projectOwner","type":"address"},
	{"name":"approvers","type":"address[]"},
	{"name":"isActive","type":"bool"},
	{"name":"createdAt","type":"uint256"},
	{"name":"status","type":"uint8"}]}]},
{"type":"function","name":"getProjectHash","stateMutability":"view","inputs":[{"name":"_projectId","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
{"type":"function","name":"getRemainingFunds","stateMutability":"view","inputs":[{"name":"_projectId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getSpendingPercentage","stateMutability":"view","inputs":[{"name":"_projectId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getProjectSpendingRecords","stateMutability":"view","inputs":[{"name":"_projectId","type":"uint256"}],"outputs":[{"name":"","type":"tuple[]","components":[
	{"name":"projectId","type":"uint256"},
	{"name":"amount","type":"uint256"},
	{"name":"category","type":"string"},
	{"name":"spentBy","type":"address"},
	{"name":"timestamp","type":"uint256"},
	{"name":"approved","type":"bool"},
	{"name":"descriptionHash","type":"bytes32"}]}]},
{"type":"event","name":"ProjectCreated","anonymous":false,"inputs":[
	{"name":"projectId","type":"uint256","indexed":true},
	{"name":"projectOwner","type":"address","indexed":true},
	{"name":"allocatedAmount","type":"uint256","indexed":false},
	{"name":"dataHash","type":"bytes32","indexed":false}]},
{"type":"event","name":"FundsSpent","anonymous":false,"inputs":[
	{"name":"projectId","type":"uint256","indexed":true},
	{"name":"spentBy","type":"address","indexed":true},
	{"name":"amount","type":"uint256","indexed":false},
	{"name":"category","type":"string","indexed":false},
	{"name":"descriptionHash","type":"bytes32","indexed":false}]}
]`

// ContractABI is the parsed FundTracker interface.
var ContractABI = mustParseABI(fundTrackerABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
