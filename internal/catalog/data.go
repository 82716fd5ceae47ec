package catalog

// 内置职业路径数据
var careerPaths = []CareerPath{
	{
		ID:          "software-dev",
		Name:        "Software Development",
		Description: "Master full-stack development and build scalable applications",
		Icon:        "code",
		Color:       "#10B981",
		Milestones: []Milestone{
			{
				ID: "sd-1", Title: "Programming Fundamentals", Order: 1, EstimatedDays: 45,
				Description: "Learn core programming concepts, data structures, and algorithms",
				Resources: []Resource{
					{Title: "CS50 - Harvard", URL: "https://cs50.harvard.edu/x/", Type: ResourceCourse},
					{Title: "Python for Beginners", URL: "https://www.youtube.com/watch?v=rfscVS0vtbw", Type: ResourceVideo},
					{Title: "Data Structures Guide", URL: "https://www.geeksforgeeks.org/data-structures/", Type: ResourceArticle},
				},
			},
			{
				ID: "sd-2", Title: "Frontend Development", Order: 2, EstimatedDays: 60,
				Description: "Master HTML, CSS, JavaScript, and modern frameworks like React",
				Resources: []Resource{
					{Title: "MDN Web Docs", URL: "https://developer.mozilla.org/", Type: ResourceArticle},
					{Title: "React Official Tutorial", URL: "https://react.dev/learn", Type: ResourceCourse},
					{Title: "Frontend Roadmap", URL: "https://www.youtube.com/watch?v=9He4UBLyk8Y", Type: ResourceVideo},
				},
			},
			{
				ID: "sd-3", Title: "Backend Development", Order: 3, EstimatedDays: 60,
				Description: "Learn server-side programming, databases, and API design",
				Resources: []Resource{
					{Title: "Node.js Guide", URL: "https://nodejs.org/en/docs/guides/", Type: ResourceArticle},
					{Title: "FastAPI Tutorial", URL: "https://fastapi.tiangolo.com/tutorial/", Type: ResourceCourse},
					{Title: "Database Design", URL: "https://www.youtube.com/watch?v=ztHopE5Wnpc", Type: ResourceVideo},
				},
			},
			{
				ID: "sd-4", Title: "DevOps & Deployment", Order: 4, EstimatedDays: 40,
				Description: "Master CI/CD, containerization, and cloud platforms",
				Resources: []Resource{
					{Title: "Docker Getting Started", URL: "https://docs.docker.com/get-started/", Type: ResourceCourse},
					{Title: "Kubernetes Basics", URL: "https://kubernetes.io/docs/tutorials/", Type: ResourceArticle},
					{Title: "CI/CD Pipeline", URL: "https://www.youtube.com/watch?v=scEDHsr3APg", Type: ResourceVideo},
				},
			},
			{
				ID: "sd-5", Title: "System Design", Order: 5, EstimatedDays: 50,
				Description: "Design scalable, distributed systems and architecture",
				Resources: []Resource{
					{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Type: ResourceArticle},
					{Title: "Designing Data-Intensive Apps", URL: "https://dataintensive.net/", Type: ResourceCourse},
					{Title: "System Design Interview", URL: "https://www.youtube.com/watch?v=UzLMhqg3_Wc", Type: ResourceVideo},
				},
			},
		},
	},
	{
		ID:          "cybersecurity",
		Name:        "Cybersecurity",
		Description: "Protect systems and networks from digital threats",
		Icon:        "shield",
		Color:       "#EF4444",
		Milestones: []Milestone{
			{
				ID: "cs-1", Title: "Security Fundamentals", Order: 1, EstimatedDays: 40,
				Description: "Understand core security principles, threats, and vulnerabilities",
				Resources: []Resource{
					{Title: "CompTIA Security+", URL: "https://www.comptia.org/certifications/security", Type: ResourceCourse},
					{Title: "OWASP Top 10", URL: "https://owasp.org/www-project-top-ten/", Type: ResourceArticle},
					{Title: "Cybersecurity Basics", URL: "https://www.youtube.com/watch?v=inWWhr5tnEA", Type: ResourceVideo},
				},
			},
			{
				ID: "cs-2", Title: "Network Security", Order: 2, EstimatedDays: 45,
				Description: "Secure networks, firewalls, and network protocols",
				Resources: []Resource{
					{Title: "Network+ Guide", URL: "https://www.professormesser.com/network-plus/n10-008/n10-008-video/n10-008-training-course/", Type: ResourceCourse},
					{Title: "Wireshark Tutorial", URL: "https://www.wireshark.org/docs/", Type: ResourceArticle},
					{Title: "Network Security", URL: "https://www.youtube.com/watch?v=qiQR5rTSshw", Type: ResourceVideo},
				},
			},
			{
				ID: "cs-3", Title: "Ethical Hacking", Order: 3, EstimatedDays: 55,
				Description: "Learn penetration testing and vulnerability assessment",
				Resources: []Resource{
					{Title: "TryHackMe", URL: "https://tryhackme.com/", Type: ResourceCourse},
					{Title: "HackTheBox", URL: "https://www.hackthebox.com/", Type: ResourceCourse},
					{Title: "Metasploit Guide", URL: "https://www.offensive-security.com/metasploit-unleashed/", Type: ResourceArticle},
				},
			},
			{
				ID: "cs-4", Title: "Security Operations", Order: 4, EstimatedDays: 50,
				Description: "Master SOC operations, SIEM, and incident response",
				Resources: []Resource{
					{Title: "Splunk Fundamentals", URL: "https://www.splunk.com/en_us/training.html", Type: ResourceCourse},
					{Title: "Incident Response Guide", URL: "https://www.sans.org/white-papers/", Type: ResourceArticle},
					{Title: "SOC Analyst Path", URL: "https://www.youtube.com/watch?v=bwj7GFUcn50", Type: ResourceVideo},
				},
			},
			{
				ID: "cs-5", Title: "Advanced Security", Order: 5, EstimatedDays: 60,
				Description: "Cloud security, malware analysis, and forensics",
				Resources: []Resource{
					{Title: "AWS Security", URL: "https://aws.amazon.com/security/", Type: ResourceCourse},
					{Title: "Malware Analysis", URL: "https://www.malware-traffic-analysis.net/", Type: ResourceArticle},
					{Title: "Digital Forensics", URL: "https://www.youtube.com/watch?v=NG9Cg_vBKOg", Type: ResourceVideo},
				},
			},
		},
	},
	{
		ID:          "ai-ml",
		Name:        "AI & Machine Learning",
		Description: "Build intelligent systems that learn from data",
		Icon:        "brain",
		Color:       "#8B5CF6",
		Milestones: []Milestone{
			{
				ID: "ai-1", Title: "Mathematics & Statistics", Order: 1, EstimatedDays: 50,
				Description: "Master linear algebra, calculus, probability, and statistics",
				Resources: []Resource{
					{Title: "Khan Academy Math", URL: "https://www.khanacademy.org/math", Type: ResourceCourse},
					{Title: "3Blue1Brown Linear Algebra", URL: "https://www.youtube.com/playlist?list=PLZHQObOWTQDPD3MizzM2xVFitgF8hE_ab", Type: ResourceVideo},
					{Title: "Statistics for ML", URL: "https://www.statlearning.com/", Type: ResourceArticle},
				},
			},
			{
				ID: "ai-2", Title: "Python for Data Science", Order: 2, EstimatedDays: 40,
				Description: "Learn NumPy, Pandas, Matplotlib, and data manipulation",
				Resources: []Resource{
					{Title: "Python Data Science Handbook", URL: "https://jakevdp.github.io/PythonDataScienceHandbook/", Type: ResourceArticle},
					{Title: "Kaggle Learn", URL: "https://www.kaggle.com/learn", Type: ResourceCourse},
					{Title: "Data Analysis Tutorial", URL: "https://www.youtube.com/watch?v=r-uOLxNrNk8", Type: ResourceVideo},
				},
			},
			{
				ID: "ai-3", Title: "Machine Learning Basics", Order: 3, EstimatedDays: 60,
				Description: "Supervised and unsupervised learning algorithms",
				Resources: []Resource{
					{Title: "Andrew Ng ML Course", URL: "https://www.coursera.org/learn/machine-learning", Type: ResourceCourse},
					{Title: "Scikit-learn Docs", URL: "https://scikit-learn.org/stable/tutorial/index.html", Type: ResourceArticle},
					{Title: "ML Crash Course", URL: "https://www.youtube.com/watch?v=i_LwzRVP7bg", Type: ResourceVideo},
				},
			},
			{
				ID: "ai-4", Title: "Deep Learning", Order: 4, EstimatedDays: 70,
				Description: "Neural networks, CNNs, RNNs, and transformers",
				Resources: []Resource{
					{Title: "Deep Learning Specialization", URL: "https://www.coursera.org/specializations/deep-learning", Type: ResourceCourse},
					{Title: "PyTorch Tutorials", URL: "https://pytorch.org/tutorials/", Type: ResourceArticle},
					{Title: "Neural Networks Explained", URL: "https://www.youtube.com/watch?v=aircAruvnKk", Type: ResourceVideo},
				},
			},
			{
				ID: "ai-5", Title: "Advanced AI & MLOps", Order: 5, EstimatedDays: 55,
				Description: "Production ML, model deployment, and LLMs",
				Resources: []Resource{
					{Title: "MLOps Guide", URL: "https://ml-ops.org/", Type: ResourceArticle},
					{Title: "Hugging Face Course", URL: "https://huggingface.co/course", Type: ResourceCourse},
					{Title: "LLM Applications", URL: "https://www.youtube.com/watch?v=zjkBMFhNj_g", Type: ResourceVideo},
				},
			},
		},
	},
	{
		ID:          "data-science",
		Name:        "Data Scientist",
		Description: "Extract insights from data and make data-driven decisions",
		Icon:        "chart",
		Color:       "#3B82F6",
		Milestones: []Milestone{
			{
				ID: "ds-1", Title: "Data Analysis Fundamentals", Order: 1, EstimatedDays: 45,
				Description: "SQL, data wrangling, and exploratory analysis",
				Resources: []Resource{
					{Title: "SQL Tutorial", URL: "https://mode.com/sql-tutorial/", Type: ResourceCourse},
					{Title: "Pandas Guide", URL: "https://pandas.pydata.org/docs/user_guide/index.html", Type: ResourceArticle},
					{Title: "Data Cleaning Tutorial", URL: "https://www.youtube.com/watch?v=iYie42M1ZyU", Type: ResourceVideo},
				},
			},
			{
				ID: "ds-2", Title: "Statistical Analysis", Order: 2, EstimatedDays: 50,
				Description: "Hypothesis testing, A/B testing, and statistical modeling",
				Resources: []Resource{
					{Title: "Statistics by Example", URL: "https://www.statisticsbyjim.com/", Type: ResourceArticle},
					{Title: "A/B Testing Guide", URL: "https://www.optimizely.com/optimization-glossary/ab-testing/", Type: ResourceArticle},
					{Title: "Statistics Course", URL: "https://www.youtube.com/watch?v=xxpc-HPKN28", Type: ResourceVideo},
				},
			},
			{
				ID: "ds-3", Title: "Data Visualization", Order: 3, EstimatedDays: 35,
				Description: "Create compelling visualizations with Tableau, Power BI",
				Resources: []Resource{
					{Title: "Tableau Public", URL: "https://public.tableau.com/app/resources/learn", Type: ResourceCourse},
					{Title: "Matplotlib Tutorial", URL: "https://matplotlib.org/stable/tutorials/index.html", Type: ResourceArticle},
					{Title: "Data Viz Best Practices", URL: "https://www.youtube.com/watch?v=8EMW7io4rSI", Type: ResourceVideo},
				},
			},
			{
				ID: "ds-4", Title: "Machine Learning for Data Science", Order: 4, EstimatedDays: 60,
				Description: "Predictive modeling and feature engineering",
				Resources: []Resource{
					{Title: "Feature Engineering Book", URL: "https://www.oreilly.com/library/view/feature-engineering-for/9781491953235/", Type: ResourceArticle},
					{Title: "Applied ML", URL: "https://www.coursera.org/learn/applied-machine-learning", Type: ResourceCourse},
					{Title: "Model Selection", URL: "https://www.youtube.com/watch?v=EuBBz3bI-aA", Type: ResourceVideo},
				},
			},
			{
				ID: "ds-5", Title: "Big Data & Production", Order: 5, EstimatedDays: 55,
				Description: "Spark, data pipelines, and cloud data platforms",
				Resources: []Resource{
					{Title: "Apache Spark Guide", URL: "https://spark.apache.org/docs/latest/", Type: ResourceArticle},
					{Title: "Data Engineering", URL: "https://www.datacamp.com/tracks/data-engineer", Type: ResourceCourse},
					{Title: "Big Data Tutorial", URL: "https://www.youtube.com/watch?v=9aEsXRTs1Ms", Type: ResourceVideo},
				},
			},
		},
	},
	{
		ID:          "web3",
		Name:        "Web3 Developer",
		Description: "Build decentralized applications on blockchain",
		Icon:        "cube",
		Color:       "#F59E0B",
		Milestones: []Milestone{
			{
				ID: "w3-1", Title: "Blockchain Basics", Order: 1, EstimatedDays: 40,
				Description: "Understand blockchain, crypto, and distributed systems",
				Resources: []Resource{
					{Title: "Blockchain Fundamentals", URL: "https://www.coursera.org/learn/blockchain-basics", Type: ResourceCourse},
					{Title: "Bitcoin Whitepaper", URL: "https://bitcoin.org/bitcoin.pdf", Type: ResourceArticle},
					{Title: "Blockchain Explained", URL: "https://www.youtube.com/watch?v=SSo_EIwHSd4", Type: ResourceVideo},
				},
			},
			{
				ID: "w3-2", Title: "Solidity & Smart Contracts", Order: 2, EstimatedDays: 55,
				Description: "Write and deploy smart contracts on Ethereum",
				Resources: []Resource{
					{Title: "Solidity Docs", URL: "https://docs.soliditylang.org/", Type: ResourceArticle},
					{Title: "CryptoZombies", URL: "https://cryptozombies.io/", Type: ResourceCourse},
					{Title: "Smart Contract Tutorial", URL: "https://www.youtube.com/watch?v=M576WGiDBdQ", Type: ResourceVideo},
				},
			},
			{
				ID: "w3-3", Title: "DApp Development", Order: 3, EstimatedDays: 50,
				Description: "Build frontend interfaces with Web3.js and Ethers.js",
				Resources: []Resource{
					{Title: "Web3.js Guide", URL: "https://web3js.readthedocs.io/", Type: ResourceArticle},
					{Title: "Ethers.js Docs", URL: "https://docs.ethers.org/", Type: ResourceArticle},
					{Title: "Full Stack DApp", URL: "https://www.youtube.com/watch?v=a0osIaAOFSE", Type: ResourceVideo},
				},
			},
			{
				ID: "w3-4", Title: "DeFi & NFTs", Order: 4, EstimatedDays: 60,
				Description: "Decentralized finance protocols and NFT marketplaces",
				Resources: []Resource{
					{Title: "DeFi Developer Roadmap", URL: "https://github.com/OffcierCia/DeFi-Developer-Road-Map", Type: ResourceArticle},
					{Title: "NFT School", URL: "https://nftschool.dev/", Type: ResourceCourse},
					{Title: "Build NFT Marketplace", URL: "https://www.youtube.com/watch?v=GKJBEEXUha0", Type: ResourceVideo},
				},
			},
			{
				ID: "w3-5", Title: "Advanced Web3", Order: 5, EstimatedDays: 55,
				Description: "Layer 2, cross-chain, and advanced protocols",
				Resources: []Resource{
					{Title: "Layer 2 Guide", URL: "https://ethereum.org/en/layer-2/", Type: ResourceArticle},
					{Title: "Hardhat Tutorial", URL: "https://hardhat.org/tutorial", Type: ResourceCourse},
					{Title: "Advanced Solidity", URL: "https://www.youtube.com/watch?v=gyMwXuJrbJQ", Type: ResourceVideo},
				},
			},
		},
	},
	{
		ID:          "cloud-engineering",
		Name:        "Cloud Engineering",
		Description: "Design and manage scalable cloud infrastructure",
		Icon:        "cloud",
		Color:       "#06B6D4",
		Milestones: []Milestone{
			{
				ID: "ce-1", Title: "Cloud Fundamentals", Order: 1, EstimatedDays: 35,
				Description: "Learn cloud concepts, services, and deployment models",
				Resources: []Resource{
					{Title: "AWS Cloud Practitioner", URL: "https://aws.amazon.com/certification/certified-cloud-practitioner/", Type: ResourceCourse},
					{Title: "Cloud Computing Basics", URL: "https://www.cloudflare.com/learning/cloud/what-is-the-cloud/", Type: ResourceArticle},
					{Title: "Cloud Overview", URL: "https://www.youtube.com/watch?v=M988_fsOSWo", Type: ResourceVideo},
				},
			},
			{
				ID: "ce-2", Title: "AWS/Azure/GCP", Order: 2, EstimatedDays: 60,
				Description: "Master compute, storage, and networking services",
				Resources: []Resource{
					{Title: "AWS Solutions Architect", URL: "https://aws.amazon.com/certification/certified-solutions-architect-associate/", Type: ResourceCourse},
					{Title: "Azure Fundamentals", URL: "https://learn.microsoft.com/en-us/training/azure/", Type: ResourceCourse},
					{Title: "GCP Tutorial", URL: "https://www.youtube.com/watch?v=4D3X6Xl5c_Y", Type: ResourceVideo},
				},
			},
			{
				ID: "ce-3", Title: "Infrastructure as Code", Order: 3, EstimatedDays: 45,
				Description: "Terraform, CloudFormation, and automated provisioning",
				Resources: []Resource{
					{Title: "Terraform Tutorial", URL: "https://developer.hashicorp.com/terraform/tutorials", Type: ResourceCourse},
					{Title: "IaC Best Practices", URL: "https://www.hashicorp.com/resources/what-is-infrastructure-as-code", Type: ResourceArticle},
					{Title: "CloudFormation Guide", URL: "https://www.youtube.com/watch?v=9Xpuprxg7aY", Type: ResourceVideo},
				},
			},
			{
				ID: "ce-4", Title: "Container Orchestration", Order: 4, EstimatedDays: 55,
				Description: "Kubernetes, ECS, and serverless architectures",
				Resources: []Resource{
					{Title: "Kubernetes Official", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Type: ResourceCourse},
					{Title: "AWS Lambda Guide", URL: "https://aws.amazon.com/lambda/getting-started/", Type: ResourceArticle},
					{Title: "Serverless Tutorial", URL: "https://www.youtube.com/watch?v=vxJobGtqKVM", Type: ResourceVideo},
				},
			},
			{
				ID: "ce-5", Title: "Cloud Security & Monitoring", Order: 5, EstimatedDays: 50,
				Description: "Implement security, monitoring, and cost optimization",
				Resources: []Resource{
					{Title: "AWS Security Best Practices", URL: "https://aws.amazon.com/architecture/security-identity-compliance/", Type: ResourceArticle},
					{Title: "CloudWatch & Monitoring", URL: "https://aws.amazon.com/cloudwatch/", Type: ResourceCourse},
					{Title: "Cloud Cost Optimization", URL: "https://www.youtube.com/watch?v=XQFweGjK_-o", Type: ResourceVideo},
				},
			},
		},
	},
}
